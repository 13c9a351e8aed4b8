package main

import (
	"turtlewax/migrator/internal/container"
	"turtlewax/migrator/internal/service"
)

func main() {
	container.Execute("seed-contact-page", (*service.Service).SeedContactPage)
}
