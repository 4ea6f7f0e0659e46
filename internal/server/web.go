package server

import (
	"html/template"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"
)

// WebHandler обработчик для веб-интерфейса
type WebHandler struct {
	StaticDir   string
	TemplateDir string
	log         *zap.SugaredLogger
	templates   map[string]*template.Template
}

// NewWebHandler создает новый обработчик для веб-интерфейса
func NewWebHandler(staticDir, templateDir string, log *zap.SugaredLogger) *WebHandler {
	handler := &WebHandler{
		StaticDir:   staticDir,
		TemplateDir: templateDir,
		log:         log.With("module", "web"),
		templates:   make(map[string]*template.Template),
	}

	// Загружаем шаблоны
	handler.loadTemplates()

	return handler
}

// loadTemplates загружает шаблоны из директории
func (h *WebHandler) loadTemplates() {
	pages, err := filepath.Glob(filepath.Join(h.TemplateDir, "*.html"))
	if err != nil {
		h.log.Errorw("ошибка при поиске шаблонов", "dir", h.TemplateDir, "error", err)
		return
	}

	for _, page := range pages {
		name := filepath.Base(page)
		tmpl, err := template.ParseFiles(page)
		if err != nil {
			h.log.Errorw("ошибка при парсинге шаблона", "template", name, "error", err)
			continue
		}
		h.templates[name] = tmpl
	}

	h.log.Infow("шаблоны загружены", "count", len(h.templates))
}

// ServeStaticFiles обрабатывает запросы к статическим файлам
func (h *WebHandler) ServeStaticFiles() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(h.StaticDir)))
}

// RenderTemplate отображает шаблон
func (h *WebHandler) RenderTemplate(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := h.templates[name]
	if !ok {
		h.log.Errorw("шаблон не найден", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.log.Errorw("ошибка при отображении шаблона", "template", name, "error", err)
	}
}

// IndexHandler обработчик главной страницы
func (h *WebHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	h.RenderTemplate(w, "index.html", nil)
}
