package types

// ContextKey is the private key type for values stored on the command
// context.
type ContextKey string

// ClientAppKey holds the initialized *client.App.
const ClientAppKey ContextKey = "client-app"
