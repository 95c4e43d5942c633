// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	agendafeature "github.com/institutojk/mentoria/internal/app/features/agenda"
	authapifeature "github.com/institutojk/mentoria/internal/app/features/authapi"
	dashboardfeature "github.com/institutojk/mentoria/internal/app/features/dashboard"
	enrollmentsfeature "github.com/institutojk/mentoria/internal/app/features/enrollments"
	financefeature "github.com/institutojk/mentoria/internal/app/features/finance"
	healthfeature "github.com/institutojk/mentoria/internal/app/features/health"
	messagesfeature "github.com/institutojk/mentoria/internal/app/features/messages"
	productsfeature "github.com/institutojk/mentoria/internal/app/features/products"
	programsfeature "github.com/institutojk/mentoria/internal/app/features/programs"
	sendmailfeature "github.com/institutojk/mentoria/internal/app/features/sendmail"
	sessionsfeature "github.com/institutojk/mentoria/internal/app/features/sessions"
	tasksfeature "github.com/institutojk/mentoria/internal/app/features/tasks"
	usersfeature "github.com/institutojk/mentoria/internal/app/features/users"
	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store/mongostore"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/cascade"
	"github.com/institutojk/mentoria/internal/app/system/ledger"
	"github.com/institutojk/mentoria/internal/app/system/mailer"
	"github.com/institutojk/mentoria/internal/app/system/ratelimit"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The whole JSON surface lives under
// /api; /health stays at the root for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	s := mongostore.New(deps.MongoDatabase)

	tokens := auth.NewTokenManager(appCfg.JWTSecret, appCfg.TokenTTL)
	mail := mailer.New(appCfg.MailSMTPHost, appCfg.MailSMTPPort, appCfg.MailSMTPUser, appCfg.MailSMTPPass, appCfg.MailFrom, logger)
	limiter := ratelimit.NewLoginLimiter(appCfg.LoginIPLimit, appCfg.LoginIPWindow, appCfg.LoginEmailLimit, appCfg.LoginEmailWindow)

	policy := ownership.NewEvaluator(s)
	engine := cascade.NewEngine(s, logger)
	agg := ledger.NewAggregator(s)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(healthfeature.MongoPinger{Client: deps.MongoClient}, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		// Global auth middleware: resolves the bearer token into the
		// current user. Public routes pass through untouched.
		api.Use(auth.Authenticate(tokens, s, logger))

		authHandler := authapifeature.NewHandler(s, tokens, mail, limiter, logger)
		api.Mount("/auth", authapifeature.Routes(authHandler))

		usersHandler := usersfeature.NewHandler(s, policy, engine, logger)
		api.Mount("/users", usersfeature.Routes(usersHandler))
		api.Mount("/mentora", usersfeature.MentoraRoutes(usersHandler))

		programsHandler := programsfeature.NewHandler(s, engine, logger)
		api.Mount("/mentorias", programsfeature.Routes(programsHandler))

		enrollmentsHandler := enrollmentsfeature.NewHandler(s, policy, engine, mail, logger)
		api.Mount("/mentorada-mentorias", enrollmentsfeature.Routes(enrollmentsHandler))

		sessionsHandler := sessionsfeature.NewHandler(s, policy, logger)
		api.Mount("/sessoes", sessionsfeature.Routes(sessionsHandler))

		tasksHandler := tasksfeature.NewHandler(s, policy, logger)
		api.Mount("/tarefas", tasksfeature.Routes(tasksHandler))

		agendaHandler := agendafeature.NewHandler(s, policy, logger)
		api.Mount("/agendamentos", agendafeature.Routes(agendaHandler))

		messagesHandler := messagesfeature.NewHandler(s, policy, logger)
		api.Mount("/mensagens", messagesfeature.Routes(messagesHandler))

		financeHandler := financefeature.NewHandler(s, policy, agg, logger)
		api.Mount("/financeiro", financefeature.Routes(financeHandler))
		api.Mount("/parcelas", financefeature.InstallmentRoutes(financeHandler))
		api.Mount("/admin", financefeature.ReportRoutes(financeHandler))

		productsHandler := productsfeature.NewHandler(s, logger)
		api.Mount("/produtos", productsfeature.Routes(productsHandler))
		api.Mount("/user-produtos", productsfeature.AssignmentRoutes(productsHandler))

		dashboardHandler := dashboardfeature.NewHandler(s, logger)
		api.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		sendmailHandler := sendmailfeature.NewHandler(mail, logger)
		api.Mount("/send-email", sendmailfeature.Routes(sendmailHandler))
	})

	return r, nil
}
