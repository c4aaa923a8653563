// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"construction_backend/internals/configs"
	attendanceRoute "construction_backend/internals/features/attendances/attendance/route"
	evidenceRoute "construction_backend/internals/features/evidences/evidence/route"
	progressRoute "construction_backend/internals/features/progress/progress/route"
	siteRoute "construction_backend/internals/features/sites/site/route"
	userRoute "construction_backend/internals/features/users/user/route"
	workerRoute "construction_backend/internals/features/workers/worker/route"
	helper "construction_backend/internals/helpers"
	"construction_backend/internals/middlewares"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime = time.Now()

// NewApp builds the fiber app with middlewares and every route mounted.
func NewApp(db *gorm.DB, cfg configs.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		// multipart overhead on top of the evidence limit
		BodyLimit: cfg.EvidenceMaxBytes + 1<<20,
	})

	middlewares.SetupMiddlewares(app, cfg)
	SetupRoutes(app, db, cfg)
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Mounting Site routes...")
	siteRoute.SiteRoutes(api, db)

	log.Println("[INFO] Mounting Worker routes...")
	workerRoute.WorkerRoutes(api, db)

	log.Println("[INFO] Mounting Progress routes...")
	progressRoute.ProgressRoutes(api, db)

	log.Println("[INFO] Mounting Evidence routes...")
	evidenceRoute.EvidenceRoutes(api, db, int64(cfg.EvidenceMaxBytes), cfg.EvidenceThumbnailSize)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(api, db)
}
