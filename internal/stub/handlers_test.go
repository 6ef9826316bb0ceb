package stub

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newServer(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := NewStore()
	Seed(st)
	srv := httptest.NewServer(NewRouter(st, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv, st
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func insertBody(date, slot string) map[string]any {
	return map[string]any{
		"dataAtendimento":   date,
		"dthoraAgendamento": "2025-03-01T10:00:00Z",
		"horario":           slot,
		"fk_usuario_id":     2,
		"fk_servico_id":     1,
	}
}

func TestDuplicateSlotRejected(t *testing.T) {
	srv, _ := newServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/agendamento/inserir", insertBody("2025-03-20", "09:00:00"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first insert: status %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/agendamento/inserir", insertBody("2025-03-20", "09:00:00"))
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate slot: status %d, want 409", resp.StatusCode)
	}

	// same slot on another day is fine
	resp = doJSON(t, http.MethodPost, srv.URL+"/agendamento/inserir", insertBody("2025-03-21", "09:00:00"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("other day: status %d", resp.StatusCode)
	}
}

func TestUpdateExcludesOwnSlot(t *testing.T) {
	srv, st := newServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/agendamento/inserir", insertBody("2025-03-20", "09:00:00"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("insert: status %d", resp.StatusCode)
	}
	rows := st.AppointmentsByEmail("maria@example.com")
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	id := rows[0].AgendamentoID

	// re-save the same record with its own slot
	resp = doJSON(t, http.MethodPut, srv.URL+"/agendamento/atualizar/"+strconv.Itoa(id), map[string]any{
		"dataatendimento":   "2025-03-20",
		"dthoraAgendamento": "2025-03-01T10:00:00Z",
		"horario":           "09:00:00",
		"fk_usuario_id":     2,
		"fk_servico_id":     2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("self-update: status %d, want 200", resp.StatusCode)
	}
}

// The user listing returns the stored password verbatim.
func TestUserListCarriesPlaintextPassword(t *testing.T) {
	srv, _ := newServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/usuarios", nil)
	var users []User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, u := range users {
		if u.Email == "maria@example.com" && u.Senha != "maria123" {
			t.Errorf("senha = %q, want stored value", u.Senha)
		}
	}
}

// Deleting a service leaves referencing appointments in place with an
// empty join, matching the real backend's orphan behavior.
func TestServiceDeletionOrphansAppointments(t *testing.T) {
	srv, st := newServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/agendamento/inserir", insertBody("2025-03-20", "09:00:00"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("insert: status %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/servico/deletar/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete service: status %d", resp.StatusCode)
	}

	rows := st.AppointmentsByEmail("maria@example.com")
	if len(rows) != 1 {
		t.Fatalf("appointment should survive service deletion, rows = %d", len(rows))
	}
	if rows[0].Valor != nil || rows[0].TipoServico != "" {
		t.Errorf("orphan row should have empty join, got %v %q", rows[0].Valor, rows[0].TipoServico)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	srv, _ := newServer(t)

	body := map[string]any{"nome": "X", "email": "maria@example.com", "senha": "x", "tipoUsuario": 1}
	resp := doJSON(t, http.MethodPost, srv.URL+"/usuario/inserir", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate email: status %d, want 409", resp.StatusCode)
	}
}

func TestLoginRateLimit(t *testing.T) {
	srv, _ := newServer(t)

	body := map[string]any{"email": "maria@example.com", "senha": "wrong"}
	limited := false
	for i := 0; i < 20; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/usuarios/login", body)
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatal("expected the limiter to trip on rapid logins")
	}
}
