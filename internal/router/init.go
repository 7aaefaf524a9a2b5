package router

import (
	"taskboard/internal/application"
	"taskboard/internal/container"
	pginfra "taskboard/internal/infrastructure/postgres"
	handlers "taskboard/internal/interface/http"
	"taskboard/internal/mapper"
	"taskboard/internal/router/modules"
)

// InitModules builds the repository, service, and handler graph from the
// container singletons and registers every feature module. Call once during
// startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	statuses := pginfra.NewTaskStatusRepository(pool)
	labels := pginfra.NewLabelRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)

	// Interface-typed nil check: a nil *RedisSessions must stay a nil store.
	var sessions application.SessionStore
	if rs := container.GetSessions(); rs != nil {
		sessions = rs
	}

	taskMapper := mapper.NewTaskMapper(statuses, labels, users)

	authSvc := application.NewAuthService(users, container.GetJWT(), sessions, logger)
	userSvc := application.NewUserService(users, tasks, logger, container.GetRabbitPub())
	statusSvc := application.NewTaskStatusService(statuses, tasks, logger)
	labelSvc := application.NewLabelService(labels, tasks, logger)
	taskSvc := application.NewTaskService(tasks, taskMapper, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	statusHandler := handlers.NewTaskStatusHandler(statusSvc, logger)
	labelHandler := handlers.NewLabelHandler(labelSvc, logger)
	taskHandler := handlers.NewTaskHandler(taskSvc, logger)

	jwt := container.GetJWT()
	r.Add(modules.NewAuthModule(authHandler, jwt, sessions))
	r.Add(modules.NewUserModule(userHandler, jwt, sessions))
	r.Add(modules.NewTaskStatusModule(statusHandler, jwt, sessions))
	r.Add(modules.NewLabelModule(labelHandler, jwt, sessions))
	r.Add(modules.NewTaskModule(taskHandler, jwt, sessions))
}
