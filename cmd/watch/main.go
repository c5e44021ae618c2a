// Command watch prints registration events streamed by the referral service.
package main

import (
	"flag"
	"log"
	"net/http"

	"zynta_referral/internal/service"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

func main() {
	url := flag.String("url", "ws://localhost:3000/api/events", "event stream URL")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*url, http.Header{})
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer conn.Close()

	messageQueue := make(chan service.Message)

	go func() {
		defer close(messageQueue)
		for {
			_, p, err := conn.ReadMessage()
			if err != nil {
				log.Println("read error:", err)
				return
			}

			var msg service.Message
			if err := json.Unmarshal(p, &msg); err != nil {
				log.Println("decode error:", err)
				continue
			}
			messageQueue <- msg
		}
	}()

	for message := range messageQueue {
		out, err := json.MarshalIndent(message.Payload, "", "  ")
		if err != nil {
			log.Println("json marshal error:", err)
			continue
		}
		log.Printf("%s\n%s\n", message.Type, out)
	}
}
