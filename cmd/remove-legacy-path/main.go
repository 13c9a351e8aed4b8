package main

import (
	"turtlewax/migrator/internal/container"
	"turtlewax/migrator/internal/service"
)

func main() {
	container.Execute("remove-legacy-path", (*service.Service).RemoveLegacyPath)
}
