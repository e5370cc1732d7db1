// guardian-verdict reads a Guardian metrics snapshot from stdin, asks the
// local Ollama model for a short verdict, and prints it.
//
// External contract: on success exactly one line on stdout; on any failure
// no output at all and exit 0, so Guardian can fall back to its rule-based
// interpretation. Failure is signalled by silence, never by exit status.
package main

import (
	"context"
	"os"

	"guardian-verdict/internal/common/config"
	"guardian-verdict/internal/common/logger"
	"guardian-verdict/internal/ollama"
	"guardian-verdict/internal/verdict"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(0)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	client, err := ollama.NewClient(cfg.Ollama, log)
	if err != nil {
		log.Debug("client setup failed", map[string]interface{}{"error": err.Error()})
		os.Exit(0)
	}

	runner := verdict.NewRunner(client, cfg.Ollama.Timeout(), log)

	// The error is deliberately dropped: the runner has already logged it,
	// and Guardian treats silence as "no opinion".
	_ = runner.Run(context.Background(), os.Stdin, os.Stdout)
}
