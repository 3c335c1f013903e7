package main

import "ai-doctor-chat-app/config"

func main() {
	config.RunServer()
}
