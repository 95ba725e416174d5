// Command example runs the recurrence API on :8080.
//
//	curl -X POST localhost:8080/recurrence/expand \
//	  -d '{"recurrenceType":"daily","interval":3,"startDate":"2024-01-01","endDate":"2024-01-10","isEndDateEnabled":true}'
package main

import (
	"log"
	"net/http"

	"github.com/dategrid/librecur/recur"
	"github.com/dategrid/librecur/server"
)

func main() {
	engine := recur.NewEngine()
	defer engine.Close()

	srv, err := server.New(engine, "/recurrence", nil)
	if err != nil {
		log.Fatal(err)
	}

	http.Handle("/recurrence/", srv)
	log.Println("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
