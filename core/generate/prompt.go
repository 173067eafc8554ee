package generate

import "fmt"

const systemPrompt = "You are a culinary assistant that structures spoken cooking narrations. " +
	"Respond with a single JSON object with the keys \"title\" (string), " +
	"\"ingredients\" (array of strings, quantities embedded in the text) and " +
	"\"steps\" (array of strings in execution order). Do not add any text outside the JSON object."

func buildPrompt(text string) string {
	return fmt.Sprintf("Structure the following cooking narration into a recipe:\n\n%s", text)
}
