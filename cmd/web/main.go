package main

import "doulink_backend/internal/app"

func main() {
	app.Run()
}
