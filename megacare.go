package main

import (
	"github.com/megacare-dev/mega-care-api/api"
)

func main() {
	api.MainLoop()
}
