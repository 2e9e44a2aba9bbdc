package pages

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sunstone/shared/constant"
)

// Handler serves the HTML shells for the admin back office. The pages are
// thin mount points: everything dynamic goes through the /api routes.
type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) LoginRouter(router chi.Router) {
	router.Get("/", handler.LoginPage)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/", handler.AdminPage)
	router.Get("/*", handler.AdminPage)
}

const loginPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Admin Login</title>
</head>
<body>
<div id="app" data-page="login"></div>
</body>
</html>
`

const adminPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Admin</title>
</head>
<body>
<div id="app" data-page="admin"></div>
</body>
</html>
`

func (handler *Handler) LoginPage(writer http.ResponseWriter, request *http.Request) {
	writePage(writer, loginPage)
}

func (handler *Handler) AdminPage(writer http.ResponseWriter, request *http.Request) {
	writePage(writer, adminPage)
}

func writePage(writer http.ResponseWriter, page string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(http.StatusOK)

	_, _ = writer.Write([]byte(page))
}
