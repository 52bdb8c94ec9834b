package assistant

// keywordReply maps a keyword to its scripted answer
type keywordReply struct {
	keyword string
	reply   string
}

// scriptedReplies is checked in order; the first keyword found in the
// message wins.
var scriptedReplies = []keywordReply{
	{"deposit", "💰 Enter an ETH amount and press Deposit. Your principal stays yours; only the yield is donated."},
	{"yield", "⚡ Yield is what your deposit earns. Use “Simulate Yield” to add some for the demo."},
	{"harvest", "💚 Harvest collects the accrued yield and forwards it to the donation wallet."},
	{"donat", "🌍 All harvested yield goes to the vault's donation wallet. The dashboard shows the running total."},
	{"impact", "🌱 Impact counters track trees planted, meals funded and CO₂ offset by donated yield."},
	{"mock", "🧪 Mock mode fakes transactions with a short delay so you can try the vault without gas."},
	{"safe", "🔐 The vault never moves your principal. This is a demo, so please don't deposit real funds."},
	{"risk", "🔐 The vault never moves your principal. This is a demo, so please don't deposit real funds."},
	{"connect", "🔌 Press “Connect Wallet” to link your wallet. In mock mode nothing touches the chain."},
	{"wallet", "🔌 Press “Connect Wallet” to link your wallet. In mock mode nothing touches the chain."},
	{"hello", "👋 Hi! I'm the Impact Vault assistant. Ask me about deposits, yield, harvest or donations."},
}

const (
	defaultReply     = "🤔 I'm not sure about that yet. Try asking about deposits, yield, harvest or donations."
	unavailableReply = "⚠️ The AI assistant is unavailable right now. Please try again later."

	systemPrompt = "You are the assistant of Impact Vault, a demo DeFi vault that donates the yield " +
		"of user deposits to charity while the principal stays with the user. " +
		"Answer in at most three short sentences. Never ask for private keys or seed phrases."
)
