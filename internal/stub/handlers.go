package stub

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers implements the PetCare wire contract over the in-memory
// store. Shapes and status codes follow the real backend as the mobile
// app observes them.
type Handlers struct {
	st  *Store
	log *zap.Logger
}

func NewHandlers(st *Store, log *zap.Logger) *Handlers {
	return &Handlers{st: st, log: log}
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// --- auth ---

func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Email == "" || req.Senha == "" {
		fail(c, http.StatusBadRequest, "email e senha são obrigatórios")
		return
	}
	u, err := h.st.Authenticate(req.Email, req.Senha)
	if err != nil {
		fail(c, http.StatusUnauthorized, "E-mail ou senha inválidos")
		return
	}
	h.log.Info("login", zap.Int("userId", u.ID))
	u.Senha = ""
	c.JSON(http.StatusOK, gin.H{"usuario": u})
}

func (h *Handlers) ResetPassword(c *gin.Context) {
	var req struct {
		Email          string `json:"email"`
		NovaSenha      string `json:"novaSenha"`
		ConfirmarSenha string `json:"confirmarSenha"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Email == "" || req.NovaSenha == "" || req.ConfirmarSenha == "" {
		fail(c, http.StatusBadRequest, "todos os campos são obrigatórios")
		return
	}
	if req.NovaSenha != req.ConfirmarSenha {
		fail(c, http.StatusBadRequest, "as senhas não coincidem")
		return
	}
	if err := h.st.ResetPassword(req.Email, req.NovaSenha); err != nil {
		fail(c, http.StatusNotFound, "usuário não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "senha redefinida"})
}

// --- users ---

func (h *Handlers) InsertUser(c *gin.Context) {
	var u User
	if err := c.ShouldBindJSON(&u); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if u.Nome == "" || u.Email == "" || u.Senha == "" {
		fail(c, http.StatusBadRequest, "nome, email e senha são obrigatórios")
		return
	}
	created, err := h.st.CreateUser(u)
	if errors.Is(err, ErrDuplicateEmail) {
		fail(c, http.StatusConflict, "e-mail já cadastrado")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handlers) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.ListUsers())
}

func (h *Handlers) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var u User
	if err := c.ShouldBindJSON(&u); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.st.UpdateUser(id, u); err != nil {
		fail(c, http.StatusNotFound, "usuário não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "usuário atualizado"})
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.st.DeleteUser(id); err != nil {
		fail(c, http.StatusNotFound, "usuário não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "usuário excluído"})
}

// --- services ---

func (h *Handlers) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.ListServices())
}

func (h *Handlers) InsertService(c *gin.Context) {
	var svc Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if svc.TipoServico == "" || svc.Valor <= 0 {
		fail(c, http.StatusBadRequest, "tiposervico e valor são obrigatórios")
		return
	}
	c.JSON(http.StatusCreated, h.st.CreateService(svc))
}

func (h *Handlers) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var svc Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.st.UpdateService(id, svc); err != nil {
		fail(c, http.StatusNotFound, "serviço não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "serviço atualizado"})
}

func (h *Handlers) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.st.DeleteService(id); err != nil {
		fail(c, http.StatusNotFound, "serviço não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "serviço excluído"})
}

// --- appointments ---

func (h *Handlers) ListAppointmentsByUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		fail(c, http.StatusBadRequest, "email é obrigatório")
		return
	}
	c.JSON(http.StatusOK, h.st.AppointmentsByEmail(email))
}

// insert and update bind separately: the backend's insert route expects
// dataAtendimento, the update route dataatendimento.
func (h *Handlers) InsertAppointment(c *gin.Context) {
	var req struct {
		DataAtendimento   string `json:"dataAtendimento"`
		DthoraAgendamento string `json:"dthoraAgendamento"`
		Horario           string `json:"horario"`
		FkUsuarioID       int    `json:"fk_usuario_id"`
		FkServicoID       int    `json:"fk_servico_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.DataAtendimento == "" || req.Horario == "" || req.FkUsuarioID <= 0 || req.FkServicoID <= 0 {
		fail(c, http.StatusBadRequest, "dados do agendamento incompletos")
		return
	}
	created, err := h.st.CreateAppointment(Appointment{
		DataAtendimento:   req.DataAtendimento,
		DthoraAgendamento: req.DthoraAgendamento,
		Horario:           req.Horario,
		FkUsuarioID:       req.FkUsuarioID,
		FkServicoID:       req.FkServicoID,
	})
	if errors.Is(err, ErrSlotTaken) {
		fail(c, http.StatusConflict, "horário já agendado")
		return
	}
	h.log.Info("appointment created",
		zap.Int("id", created.ID),
		zap.String("date", created.DataAtendimento),
		zap.String("slot", created.Horario))
	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

func (h *Handlers) UpdateAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		DataAtendimento   string `json:"dataatendimento"`
		DthoraAgendamento string `json:"dthoraAgendamento"`
		Horario           string `json:"horario"`
		FkUsuarioID       int    `json:"fk_usuario_id"`
		FkServicoID       int    `json:"fk_servico_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.DataAtendimento == "" || req.Horario == "" {
		fail(c, http.StatusBadRequest, "dados do agendamento incompletos")
		return
	}
	err := h.st.UpdateAppointment(id, Appointment{
		DataAtendimento:   req.DataAtendimento,
		DthoraAgendamento: req.DthoraAgendamento,
		Horario:           req.Horario,
		FkUsuarioID:       req.FkUsuarioID,
		FkServicoID:       req.FkServicoID,
	})
	switch {
	case errors.Is(err, ErrSlotTaken):
		fail(c, http.StatusConflict, "horário já agendado")
	case errors.Is(err, ErrNotFound):
		fail(c, http.StatusNotFound, "agendamento não encontrado")
	default:
		c.JSON(http.StatusOK, gin.H{"message": "agendamento atualizado"})
	}
}

func (h *Handlers) DeleteAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.st.DeleteAppointment(id); err != nil {
		fail(c, http.StatusNotFound, "agendamento não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "agendamento excluído"})
}
