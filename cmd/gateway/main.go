package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	api "github.com/studyforge/studyforge-lms/internal/api/http"
	"github.com/studyforge/studyforge-lms/internal/bank"
	"github.com/studyforge/studyforge-lms/internal/config"
	"github.com/studyforge/studyforge-lms/internal/course"
	"github.com/studyforge/studyforge-lms/internal/db"
	"github.com/studyforge/studyforge-lms/internal/quiz"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		bankStore   bank.Store
		quizStore   quiz.Store
		courseStore course.Store
	)
	switch db.Driver(cfg.DBDriver) {
	case db.DriverMongo:
		mdb, err := db.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatalf("mongo open failed: %v", err)
		}
		bankStore = bank.NewMongoStore(mdb)
		quizStore = quiz.NewMongoStore(mdb)
		courseStore = course.NewMongoStore(mdb)
	default:
		dbh, err := db.OpenSQL(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		bankStore = bank.NewSQLStore(dbh)
		quizStore = quiz.NewSQLStore(dbh)
		courseStore = course.NewSQLStore(dbh)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(ar chi.Router) {
		ar.Post("/subjects", api.CreateSubjectHandler(courseStore))
		ar.Get("/subjects", api.ListSubjectsHandler(courseStore))
		ar.Post("/courses", api.CreateCourseHandler(courseStore))
		ar.Get("/courses", api.ListCoursesHandler(courseStore))

		ar.Post("/bank/questions", api.CreateBankQuestionHandler(bankStore))
		ar.Get("/bank/questions", api.ListBankQuestionsHandler(bankStore))
		ar.Get("/bank/questions/{questionID}", api.GetBankQuestionHandler(bankStore))
		ar.Delete("/bank/questions/{questionID}", api.DeleteBankQuestionHandler(bankStore))

		ar.Post("/quizzes", api.SubmitQuizHandler(bankStore, quizStore))
		ar.Get("/quizzes", api.ListQuizzesHandler(quizStore))
		ar.Get("/quizzes/{quizID}", api.GetQuizHandler(quizStore))
		ar.Patch("/quizzes/{quizID}/questions/{questionID}", api.UpdateQuizQuestionHandler(quizStore))
		ar.Delete("/quizzes/{quizID}/questions/{questionID}", api.DeleteQuizQuestionHandler(quizStore))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
