package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"petcare-client/internal/api"
	"petcare-client/internal/booking"
	"petcare-client/internal/config"
	"petcare-client/internal/controller"
	"petcare-client/internal/gate"
	"petcare-client/internal/logging"
	"petcare-client/internal/model"
	"petcare-client/internal/session"
)

const usage = `usage: petcare <command> [flags]

commands:
  login            -email -senha
  register         -nome -email -senha
  reset-password   -email -senha -confirmar
  logout
  screens          show the navigation entries for the current session
  appointments     list [-q] | add | edit | delete
  services         list [-q] | add | edit | delete
  users            list [-q] | add | edit | delete
  slots            show the bookable time slots
`

// app bundles everything a command needs, built once in main so every
// screen receives the same injected session.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	sess   *session.Session
	client *api.Client
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	a := &app{
		cfg:    cfg,
		log:    log,
		sess:   session.New(session.NewFileStore(cfg.SessionFile), log),
		client: api.New(cfg.APIBaseURL, log),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "reset-password":
		return a.resetPassword(ctx, args)
	case "logout":
		controller.NewAuth(a.client, a.sess, a.log).Logout()
		fmt.Println("sessão encerrada")
		return nil
	case "screens":
		for _, s := range gate.Screens(a.sess.Role()) {
			fmt.Println(s)
		}
		return nil
	case "slots":
		for _, s := range booking.Slots {
			fmt.Println(s)
		}
		return nil
	case "appointments":
		return a.appointments(ctx, args)
	case "services":
		return a.services(ctx, args)
	case "users":
		return a.users(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// userMessage maps the error taxonomy to the messages the screens show.
func userMessage(err error) string {
	var ve *controller.ValidationError
	var ce *controller.ConflictError
	var ne *api.NetworkError
	switch {
	case errors.As(err, &ve):
		return "Campos obrigatórios: preencha " + strings.Join(ve.Missing, ", ")
	case errors.As(err, &ce):
		return "Horário indisponível: já existe um atendimento agendado neste horário e dia."
	case errors.As(err, &ne):
		return "Falha ao conectar ao servidor. Verifique sua conexão."
	}
	if se, ok := api.IsServerError(err); ok && se.Message != "" {
		return se.Message
	}
	return err.Error()
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "e-mail")
	senha := fs.String("senha", "", "senha")
	fs.Parse(args)

	auth := controller.NewAuth(a.client, a.sess, a.log)
	if auth.LoggedIn() {
		fmt.Println("já autenticado")
		return nil
	}
	if err := auth.Login(ctx, *email, *senha); err != nil {
		return err
	}
	fmt.Println("Login bem-sucedido!")
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	nome := fs.String("nome", "", "nome")
	email := fs.String("email", "", "e-mail")
	senha := fs.String("senha", "", "senha")
	fs.Parse(args)

	auth := controller.NewAuth(a.client, a.sess, a.log)
	if err := auth.Register(ctx, *nome, *email, *senha); err != nil {
		return err
	}
	fmt.Println("Conta criada! Faça login para continuar.")
	return nil
}

func (a *app) resetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)
	email := fs.String("email", "", "e-mail")
	senha := fs.String("senha", "", "nova senha")
	confirmar := fs.String("confirmar", "", "confirmar nova senha")
	fs.Parse(args)

	auth := controller.NewAuth(a.client, a.sess, a.log)
	if err := auth.ResetPassword(ctx, *email, *senha, *confirmar); err != nil {
		return err
	}
	fmt.Println("Senha redefinida com sucesso!")
	return nil
}

// requireScreen is the role gate at the command boundary.
func (a *app) requireScreen(screens ...gate.Screen) error {
	role := a.sess.Role()
	for _, s := range screens {
		if gate.Reachable(role, s) {
			return nil
		}
	}
	return errors.New("acesso negado: faça login com um perfil autorizado")
}

func (a *app) appointments(ctx context.Context, args []string) error {
	if err := a.requireScreen(gate.ScreenAppointments, gate.ScreenMyAppointments); err != nil {
		return err
	}
	screen := controller.NewAppointmentScreen(a.client, a.sess, a.log)

	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	fs := flag.NewFlagSet("appointments "+sub, flag.ExitOnError)
	query := fs.String("q", "", "filter text")
	id := fs.Int("id", 0, "appointment id")
	date := fs.String("data", "", "data de atendimento (DD/MM/YYYY)")
	slot := fs.String("horario", "", "horário (HH:MM:SS)")
	serviceID := fs.Int("servico", 0, "service id")
	fs.Parse(args)

	if err := screen.List.Load(ctx); err != nil {
		return err
	}

	form := controller.AppointmentForm{
		Date:      *date,
		Slot:      *slot,
		ServiceID: model.ServiceID(*serviceID),
	}

	switch sub {
	case "list":
		rows := screen.List.Filter(*query)
		for _, r := range rows {
			valor := "-"
			if r.Price != nil {
				valor = fmt.Sprintf("R$ %.2f", *r.Price)
			}
			fmt.Printf("#%d  %s %s  %s  %s  %s\n",
				r.ID, booking.DisplayDate(r.ServiceDate), r.Slot,
				r.ServiceCategory, r.CustomerName, valor)
		}
		fmt.Printf("Total de agendamentos: %d\n", len(rows))
		return nil
	case "add":
		if err := screen.SubmitAdd(ctx, form); err != nil {
			return err
		}
		fmt.Println("O agendamento foi adicionado com sucesso!")
		return nil
	case "edit":
		if err := screen.SubmitEdit(ctx, model.AppointmentID(*id), form); err != nil {
			return err
		}
		fmt.Println("O agendamento foi atualizado com sucesso!")
		return nil
	case "delete":
		if err := screen.SubmitDelete(ctx, model.AppointmentID(*id)); err != nil {
			return err
		}
		fmt.Println("O agendamento foi excluído com sucesso!")
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) services(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	// the public site lists services; mutations are admin-only
	if sub != "list" {
		if err := a.requireScreen(gate.ScreenServices); err != nil {
			return err
		}
	}
	screen := controller.NewServiceScreen(a.client, a.log)

	fs := flag.NewFlagSet("services "+sub, flag.ExitOnError)
	query := fs.String("q", "", "filter text")
	id := fs.Int("id", 0, "service id")
	tipo := fs.String("tipo", "", "tipo de serviço")
	valor := fs.String("valor", "", "valor")
	fs.Parse(args)

	if err := screen.List.Load(ctx); err != nil {
		return err
	}
	form := controller.ServiceForm{Category: *tipo, Price: *valor}

	switch sub {
	case "list":
		rows := screen.List.Filter(*query)
		for _, r := range rows {
			fmt.Printf("#%d  %s  R$ %.2f\n", r.ID, r.Category, r.Price)
		}
		fmt.Printf("Total de serviços: %d\n", len(rows))
		return nil
	case "add":
		if err := screen.SubmitAdd(ctx, form); err != nil {
			return err
		}
		fmt.Println("O serviço foi adicionado com sucesso.")
		return nil
	case "edit":
		if err := screen.SubmitEdit(ctx, model.ServiceID(*id), form); err != nil {
			return err
		}
		fmt.Println("O serviço foi atualizado com sucesso.")
		return nil
	case "delete":
		if err := screen.SubmitDelete(ctx, model.ServiceID(*id)); err != nil {
			return err
		}
		fmt.Println("O serviço foi excluído com sucesso.")
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) users(ctx context.Context, args []string) error {
	if err := a.requireScreen(gate.ScreenUsers); err != nil {
		return err
	}
	screen := controller.NewUserScreen(a.client, a.log)

	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	fs := flag.NewFlagSet("users "+sub, flag.ExitOnError)
	query := fs.String("q", "", "filter text")
	id := fs.Int("id", 0, "user id")
	nome := fs.String("nome", "", "nome")
	email := fs.String("email", "", "e-mail")
	senha := fs.String("senha", "", "senha")
	tipo := fs.Int("tipo", int(model.RoleCustomer), "0 admin, 1 cliente")
	fs.Parse(args)

	if err := screen.List.Load(ctx); err != nil {
		return err
	}
	form := controller.UserForm{
		Name:     *nome,
		Email:    *email,
		Password: *senha,
		Role:     model.Role(*tipo),
	}

	switch sub {
	case "list":
		rows := screen.List.Filter(*query)
		for _, r := range rows {
			fmt.Printf("#%d  %s  %s  %s  %s\n", r.ID, r.Name, r.Email, r.Password, r.Role)
		}
		fmt.Printf("Total de usuários: %d\n", len(rows))
		return nil
	case "add":
		if err := screen.SubmitAdd(ctx, form); err != nil {
			return err
		}
		fmt.Println("Usuário adicionado com sucesso!")
		return nil
	case "edit":
		if err := screen.SubmitEdit(ctx, model.UserID(*id), form); err != nil {
			return err
		}
		fmt.Println("Usuário atualizado com sucesso!")
		return nil
	case "delete":
		if err := screen.SubmitDelete(ctx, model.UserID(*id)); err != nil {
			return err
		}
		fmt.Println("Usuário excluído com sucesso!")
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}
