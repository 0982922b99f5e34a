package main

import (
	"flag"
	"log"

	"github.com/altlab/munge/adapters/jsonstorage"
	"github.com/altlab/munge/adapters/webapi"
	"github.com/altlab/munge/service"
)

var flagSourceFile = flag.String("source-file", "./crkeng_dictionary.importjson", "Converted importjson file to serve")
var flagAddr = flag.String("addr", "localhost:8080", "Listen address")

func main() {
	flag.Parse()

	storage, err := jsonstorage.Open(*flagSourceFile, true)
	if err != nil {
		log.Fatal("Failed to open storage: ", err)
	}
	log.Println("Entries loaded:", storage.EntryCount())

	svc := &service.Service{Storage: storage, ReadOnly: true}

	api, errCh := webapi.Setup(*flagAddr)

	webapi.Entries(api.Group("/api/entries"), svc)
	webapi.Search(api.Group("/api/search"), svc)
	webapi.Stats(api.Group("/api/stats"), svc)

	err = <-errCh
	if err != nil {
		log.Fatal("Failed to listen: ", err)
	}
}
