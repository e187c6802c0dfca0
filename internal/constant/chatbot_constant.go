package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// DownloadTopicName is the in-process topic carrying attachment
	// download events for the download-count consumer.
	DownloadTopicName = "PRODUCT_DOWNLOADED"

	// ChatMaxContextProducts bounds how many products are injected into the
	// system prompt.
	ChatMaxContextProducts = 10

	ChatMaxTokens   = 300
	ChatTemperature = 0.7
	ChatMaxSnippet  = 100 // chars of description used when a product has no subtitle
)

// ChatSystemPromptTemplate wraps the platform context snapshot. The %s slot
// receives the output of the context assembler.
const ChatSystemPromptTemplate = `You are a helpful AI assistant for an AI Catalog Platform. Your role is to help users discover and understand the tools and resources available on the platform.

%s

Guidelines:
- Be helpful, concise, and friendly
- Focus on the platform's content and capabilities
- If asked about specific tools, reference the ones available on the platform
- If asked about features not on the platform, politely redirect to what is available
- Keep responses under 200 words
- Use a conversational but professional tone
- Format responses using markdown for better readability:
  * Use **bold** for important terms and tool names
  * Use bullet points (-) for lists
  * Use code formatting for technical terms (use backticks)
  * Use line breaks for better structure
- If you don't know something specific about the platform, be honest and suggest they explore the relevant sections`

// ChatContextFallback is returned by the context assembler when the catalog
// cannot be read; the chat must always have usable context.
const ChatContextFallback = "This is an AI Catalog Platform that helps users discover AI tools and development resources."

// ChatUnavailableResponse is shown to the user when the LLM call fails. The
// failure is swallowed on purpose so the chat UI stays responsive.
const ChatUnavailableResponse = "I'm experiencing some technical difficulties right now. Please try again later or browse the platform directly to find what you're looking for."

// ChatEmptyResponse covers the rare case of a successful call with no text.
const ChatEmptyResponse = "I'm sorry, I couldn't generate a response. Please try asking another question."

// ChatLimitReachedMessage accompanies the 429 quota response.
const ChatLimitReachedMessage = "Daily question limit reached. You can ask 5 questions per day."

// PredefinedQuestions seed the chat widget's suggestion list.
var PredefinedQuestions = []string{
	"What AI tools are available on this platform?",
	"How do I find code generation tools?",
	"What are the most popular development tools?",
	"Can you recommend tools for data integration?",
	"How do I search for specific features?",
}
