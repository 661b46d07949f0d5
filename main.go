package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"nunchakuclub_backend/internals/configs"
	database "nunchakuclub_backend/internals/databases"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	coachSvc "nunchakuclub_backend/internals/features/club/coaches/service"
	courseSvc "nunchakuclub_backend/internals/features/club/courses/service"
	categorySvc "nunchakuclub_backend/internals/features/home/categories/service"
	commentSvc "nunchakuclub_backend/internals/features/home/comments/service"
	contactSvc "nunchakuclub_backend/internals/features/home/contact/service"
	mediaSvc "nunchakuclub_backend/internals/features/home/media/service"
	menuSvc "nunchakuclub_backend/internals/features/home/menus/service"
	pageSvc "nunchakuclub_backend/internals/features/home/pages/service"
	postSvc "nunchakuclub_backend/internals/features/home/posts/service"
	settingSvc "nunchakuclub_backend/internals/features/home/settings/service"
	"nunchakuclub_backend/internals/logger"
)

// Domain holds every wired service. The HTTP layer lives in a separate
// repo and consumes this as its composition root.
type Domain struct {
	Activity   *logSvc.Recorder
	Categories *categorySvc.Service
	Pages      *pageSvc.Service
	Menus      *menuSvc.Service
	Posts      *postSvc.Service
	Comments   *commentSvc.Service
	Contact    *contactSvc.Service
	Media      *mediaSvc.Service
	Courses    *courseSvc.Service
	Coaches    *coachSvc.Service
	Settings   *settingSvc.Service
}

func main() {
	configs.LoadEnv()

	zlog, err := logger.New(configs.LogRoot, configs.AppEnv != "production")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	// DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	_ = buildDomain(zlog)

	zlog.Infow("domain ready", "env", configs.AppEnv)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Infow("shutting down")
}

func buildDomain(zlog *zap.SugaredLogger) *Domain {
	db := database.DB
	rec := logSvc.NewRecorder(db, zlog)
	return &Domain{
		Activity:   rec,
		Categories: categorySvc.New(db, rec),
		Pages:      pageSvc.New(db, rec),
		Menus:      menuSvc.New(db, rec),
		Posts:      postSvc.New(db, rec),
		Comments:   commentSvc.New(db, rec, zlog),
		Contact:    contactSvc.New(db, rec, zlog),
		Media:      mediaSvc.New(db, rec),
		Courses:    courseSvc.New(db, rec, zlog),
		Coaches:    coachSvc.New(db, rec, zlog),
		Settings:   settingSvc.New(db, rec, zlog),
	}
}
