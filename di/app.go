package di

import (
	"todoapp/helper"
	"todoapp/infras/sqlite"
	"todoapp/transport/http"
)

// App is everything the desktop backend needs once the graph is built.
type App struct {
	Connection *sqlite.Connection
	Migrator   *helper.Migrator
	HTTP       *http.HTTP
}
