package api

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriform/nutriform/internal/db"
	"github.com/nutriform/nutriform/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	templates     map[string]*template.Template
	repositories  *db.Repositories
	authService   *services.AuthService
	surveyService *services.SurveyService
	exportService *services.ExportService
}

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"sexLabel": func(sex string) string {
			switch sex {
			case "M":
				return "Male"
			case "F":
				return "Female"
			default:
				return sex
			}
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"home",
		"login",
		"create_account",
		"form",
		"confirmation",
		"answers",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:            database,
		secretKey:     []byte(secret),
		location:      location,
		cookieSecure:  cookieSecure,
		templates:     templates,
		repositories:  repositories,
		authService:   services.NewAuthService(repositories.Users),
		surveyService: services.NewSurveyService(repositories.Surveys),
		exportService: services.NewExportService(),
	}, nil
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{
		"Path": c.Path(),
	}
	if user, ok := currentUser(c); ok {
		payload["CurrentUser"] = user
	}
	if _, ok := data["Flash"]; !ok {
		payload["Flash"] = FlashPayload{}
	}
	for key, value := range data {
		payload[key] = value
	}
	return payload
}
