package stub

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the wire-contract routes. The limiter guards only the
// endpoints an anonymous caller can hammer.
func NewRouter(st *Store, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	h := NewHandlers(st, log)
	rl := NewRateLimiter(5, 10)

	r.POST("/usuarios/login", rl.Middleware(), h.Login)
	r.POST("/usuario/inserir", rl.Middleware(), h.InsertUser)
	r.PUT("/usuarios/redefinir-senha", h.ResetPassword)
	r.GET("/usuarios", h.ListUsers)
	r.PUT("/usuarios/atualizar/:id", h.UpdateUser)
	r.DELETE("/usuario/deletar/:id", h.DeleteUser)

	r.GET("/servicos", h.ListServices)
	r.POST("/servico/inserir", h.InsertService)
	r.PUT("/servico/atualizar/:id", h.UpdateService)
	r.DELETE("/servico/deletar/:id", h.DeleteService)

	r.GET("/agendamentosUser", h.ListAppointmentsByUser)
	r.POST("/agendamento/inserir", h.InsertAppointment)
	r.PUT("/agendamento/atualizar/:id", h.UpdateAppointment)
	r.DELETE("/agendamento/deletar/:id", h.DeleteAppointment)

	return r
}
