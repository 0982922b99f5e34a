package main

import (
	"flag"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"

	"github.com/altlab/munge/adapters/jsonstorage"
	"github.com/altlab/munge/adapters/webapi"
	"github.com/altlab/munge/service"
)

var flagSourceFile = flag.String("source-file", "./crkeng_dictionary.importjson", "Converted importjson file to serve")

func main() {
	flag.Parse()

	storage, err := jsonstorage.Open(*flagSourceFile, true)
	if err != nil {
		log.Fatalln("Failed to open json storage:", err)
		return
	}

	svc := &service.Service{Storage: storage, ReadOnly: true}
	api := webapi.SetupWithoutListener()

	webapi.Entries(api.Group("/api/entries"), svc)
	webapi.Search(api.Group("/api/search"), svc)
	webapi.Stats(api.Group("/api/stats"), svc)

	lambda.Start(echoadapter.New(api).ProxyWithContext)
}
