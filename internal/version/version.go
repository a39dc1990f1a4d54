// Package version centralizes build metadata for the three binaries and the
// logic-version tag baked into Redis session keys. Bumping PromptLogic after
// changing the system prompt or tool schemas retires every stored
// conversation, so resumed chats never replay tool behavior the code no
// longer has.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags.
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// PromptLogic versions the agent's prompt and tool contract. Increment it
// when either changes.
const PromptLogic = "v1"

type BuildInfo struct {
	Version, BuildDate, GitCommit, GoVersion, Platform string
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// SessionKey builds the versioned Redis key for a conversation.
func SessionKey(conversationID string) string {
	return fmt.Sprintf("session:%s:p%s", conversationID, PromptLogic)
}
