package main

import (
	"turtlewax/migrator/internal/container"
	"turtlewax/migrator/internal/service"
)

func main() {
	container.Execute("clear-product-whatsapp-links", (*service.Service).ClearProductWhatsAppLinks)
}
