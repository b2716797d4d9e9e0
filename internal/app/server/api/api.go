// Маршруты административного API магазина.
//
//	POST   /api/auth/login                  # Вход (публичный)
//	GET    /api/auth/me                     # Текущий пользователь
//	POST   /api/auth/logout                 # Выход
//	POST   /api/auth/register               # Создать пользователя (manager+)
//	GET    /api/users                       # Список пользователей
//	PATCH  /api/users/{id}                  # Изменить пользователя (manager+)
//	DELETE /api/users/{id}                  # Удалить пользователя (admin)
//	POST   /api/users/{id}/change-password  # Смена пароля
//	GET    /api/work-types                  # Типы работ
//	POST   /api/work-types                  # (manager+)
//	PATCH  /api/work-types/{id}             # (manager+)
//	DELETE /api/work-types/{id}             # (manager+)
//	GET    /api/settings/shop               # Настройки магазина
//	PUT    /api/settings/shop               # (admin)
//	GET    /api/backups/list                # (admin)
//	POST   /api/backups/create              # (admin)
//	POST   /api/backups/restore             # (admin)
//	DELETE /api/backups/{filename}          # (admin)
//	GET    /api/backups/history             # (admin)
//	GET    /api/health                      # Проверка состояния (публичный)
package api

import (
	"path"
	"reflect"
	"strings"

	backupAPI "goldkeeper/internal/app/server/api/http/backup"
	healthAPI "goldkeeper/internal/app/server/api/http/health"
	"goldkeeper/internal/app/server/api/http/middleware"
	"goldkeeper/internal/app/server/api/http/middleware/auth"
	"goldkeeper/internal/app/server/api/http/middleware/logger"
	settingsAPI "goldkeeper/internal/app/server/api/http/settings"
	userAPI "goldkeeper/internal/app/server/api/http/user"
	worktypeAPI "goldkeeper/internal/app/server/api/http/worktype"
	"goldkeeper/internal/domain/backup"
	"goldkeeper/internal/domain/session"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// Services - доменные сервисы, которые обслуживает API
type Services struct {
	Users    user.Servicer
	Sessions session.Servicer
	WorkType worktype.Servicer
	Settings settings.Servicer
	Backups  backup.Servicer
	DB       healthAPI.Pinger
}

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	WorkType *worktypeAPI.Handler
	Settings *settingsAPI.Handler
	Backup   *backupAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(services Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Goldkeeper API", "1.0.0")
	config.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", schemaNamer)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(API, services, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.WorkType.SetupRoutes(API)
	h.Settings.SetupRoutes(API)
	h.Backup.SetupRoutes(API)

	return mux
}

// schemaNamer добавляет к имени схемы имя пакета: CreateRequest есть и в user, и в worktype.
// Имена, уже начинающиеся с имени пакета (user.User, worktype.WorkType), не меняются.
func schemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return name
	}

	pkg := path.Base(t.PkgPath())
	if strings.HasPrefix(strings.ToLower(name), pkg) {
		return name
	}
	return strings.ToUpper(pkg[:1]) + pkg[1:] + name
}

func handlers(api huma.API, s Services, log *slog.Logger) *Handlers {
	authMW := auth.New(api, s.Sessions, s.Users, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	healthHandler := healthAPI.NewHandler(s.DB, log, middlewares.With(loggerMW.Middleware()).GetAllAndClear())

	public := middlewares.With(loggerMW.Middleware()).GetAllAndClear()
	private := middlewares.With(loggerMW.Middleware(), authMW.Middleware()).GetAllAndClear()
	userHandler := userAPI.NewHandler(s.Users, s.Sessions, log, public, private)

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	worktypeHandler := worktypeAPI.NewHandler(s.WorkType, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	settingsHandler := settingsAPI.NewHandler(s.Settings, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	backupHandler := backupAPI.NewHandler(s.Backups, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		WorkType: worktypeHandler,
		Settings: settingsHandler,
		Backup:   backupHandler,
	}
}
