package groq

import "fmt"

// Message is a role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const noDocumentPlaceholder = "No document uploaded"

// systemPrompt encodes the three-way routing policy: document-grounded answers
// come only from the supplied document and must signal absence with the exact
// "Not found in document" reply; general-knowledge questions are answered
// normally; greetings get a short conversational reply.
const systemPrompt = `You are a smart, friendly AI assistant.

Your job is to answer ALL types of questions intelligently.

Follow these rules carefully:

1. If the user's question is related to the uploaded document
   (for example: asking about names, projects, time complexity, descriptions,
   links, or any detail present in the document),
   then answer STRICTLY using only the information from the document.

2. If the user's question is about the document BUT the required information
   is NOT present in the document, reply exactly with:
   "Not found in document".

3. If the user's question is NOT related to the document
   (for example: mathematics, programming concepts, general knowledge,
   logical questions, or problem solving),
   then answer it normally with a clear explanation.

4. If the user is greeting or chatting casually
   (for example: "hi", "hello", "how are you"),
   respond in a friendly and conversational way, briefly.

5. Never invent or assume document-related facts.
   Document answers must always come only from the document.

6. Keep answers clear, helpful, and easy to understand.`

// BuildPrompt assembles the message list for one question against the bounded
// document context.
func BuildPrompt(question, documentContext string) []Message {
	docSection := documentContext
	if docSection == "" {
		docSection = noDocumentPlaceholder
	}
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf("Document:\n%s\n\nUser question:\n%s", docSection, question)},
	}
}
