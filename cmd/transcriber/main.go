package main

import "github.com/Vovarama1992/lead_scout/internal/app"

func main() {
	app.Run(app.Transcriber)
}
