package stub

import "petcare-client/internal/model"

// Seed loads a small development data set: one admin, one customer, and
// the full service catalog with placeholder prices.
func Seed(st *Store) {
	st.CreateUser(User{
		Nome:        "Admin",
		Email:       "admin@petcare.com",
		Senha:       "admin123",
		TipoUsuario: int(model.RoleAdmin),
	})
	st.CreateUser(User{
		Nome:        "Maria Silva",
		Email:       "maria@example.com",
		Senha:       "maria123",
		TipoUsuario: int(model.RoleCustomer),
	})
	for i, category := range model.ServiceCategories {
		st.CreateService(Service{
			TipoServico: category,
			Valor:       float64(40 + 10*i),
		})
	}
}
