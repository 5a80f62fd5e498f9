package bootstrap

import (
	"log"

	"github.com/brd-studio/brd-backend/config"
	"github.com/brd-studio/brd-backend/internal/generation"
	"github.com/brd-studio/brd-backend/internal/generation/llm"
)

// BuildGenerator selects the generation variant: the deterministic mock
// without a credential, the live client otherwise — wrapped with mock
// fallback when degradation is allowed.
func BuildGenerator(cfg *config.Config) generation.Generator {
	if cfg.AI.OpenAIAPIKey == "" {
		log.Println("[info] operation=bootstrap message=no OpenAI credential configured, using mock generator")
		return llm.Mock{}
	}

	live := llm.NewOpenAI(cfg.AI.OpenAIAPIKey, cfg.AI.ModelName, cfg.AI.RequestsPerMinute)
	if cfg.AI.AllowMockAI {
		return llm.Fallback{Primary: live, Backup: llm.Mock{}}
	}
	return live
}
