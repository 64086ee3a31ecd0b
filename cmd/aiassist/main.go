package main

import "github.com/cleitonmarx/symbiont-ai-assist/internal/app"

func main() {
	err := app.NewAssistApp().Run()
	if err != nil {
		panic(err)
	}
}
