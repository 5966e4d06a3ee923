package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/festivalops/report-api/api/handlers"
	"github.com/festivalops/report-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	zap.S().Infow("report-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
		"storage", a.State.Mode().String(),
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
