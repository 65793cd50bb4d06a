package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/budget"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/period"
	"github.com/carson-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Periods  period.Resolver
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("ledger-server", "1.0.0"))
	humaAPI.UseMiddleware(r.loggingMiddleware)

	account.NewCreateAccountHandler(r.Operator, r.Periods).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator, r.Periods).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator, r.Periods).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	budget.NewAllocateBudgetHandler(r.Operator, r.Periods).Register(humaAPI)
	budget.NewMoveBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewToBudgetHandler(r.Service.Budget).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// loggingMiddleware attaches a LogData to every huma request and emits one
// entry per request with the collected fields and timings.
func (r *Rest) loggingMiddleware(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	endTimer := logData.AddTiming("duration")

	next(huma.WithValue(ctx, logging.ContextKey, logData))

	endTimer()
	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}
