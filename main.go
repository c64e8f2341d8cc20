package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"kursbot/commontypes"
	"kursbot/config"
	"kursbot/modules"
	"kursbot/modules/bot"
	"kursbot/modules/currency"
	"kursbot/modules/rates"
	"kursbot/modules/settings"
)

const requestTimeout = 5 * time.Second

func main() {
	cfg, err := config.Init()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fiat := cfg.Currencies.Fiat
	if len(fiat) == 0 {
		fiat = currency.DefaultFiatCodes()
	}
	crypto := cfg.Currencies.Crypto
	if len(crypto) == 0 {
		crypto = currency.DefaultCryptoCodes()
	}
	table := currency.NewTable(fiat, crypto, cfg.Currencies.Words)
	extractor := currency.NewExtractor(table)

	cache := rates.NewCache(rates.NewClient(rates.ClientConfig{}), cfg.Rates.TTL())

	// Block until rates are available so the first request is never served
	// from an empty table.
	logrus.Info("fetching initial exchange rates")
	if _, err := cache.Refresh(ctx); err != nil {
		logrus.Fatalf("initial rates fetch failed: %v", err)
	}
	logrus.Info("initial rates fetch complete")

	scheduler := rates.NewScheduler(cache, cfg.Rates.RefreshInterval())
	if err := scheduler.Start(ctx); err != nil {
		logrus.Fatalf("failed to start rates scheduler: %v", err)
	}

	var store settings.Store = settings.NewMemoryStore()
	if dsn := cfg.Database.DSN; dsn != "" {
		if err := settings.Migrate(ctx, dsn); err != nil {
			logrus.Fatalf("database migration failed: %v", err)
		}
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			logrus.Fatalf("failed to connect to database: %v", err)
		}
		defer pool.Close()
		store = settings.NewPGStore(pool)
		logrus.Info("chat settings stored in PostgreSQL")
	} else {
		logrus.Info("no database configured, chat settings stored in memory")
	}

	registered := []modules.Module{
		bot.NewResponder(table, extractor, cache, store),
	}

	router := chi.NewRouter()
	router.Use(requestID, requestLogger)
	router.Post("/message", handleMessage(registered))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("server shutdown error: %v", err)
		}
	}()

	logrus.Infof("listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatalf("could not listen on %s: %v", server.Addr, err)
	}
}

func handleMessage(registered []modules.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg commontypes.Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		replies := []commontypes.Reply{}
		for _, m := range registered {
			out, err := m.HandleMessage(ctx, msg)
			if err != nil {
				logrus.Errorf("module %q failed for chat %d: %v", m.Name(), msg.ChatID, err)
				continue
			}
			replies = append(replies, out...)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(replies); err != nil {
			logrus.Errorf("error encoding response: %v", err)
		}
	}
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": w.Header().Get("X-Request-ID"),
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	})
}
