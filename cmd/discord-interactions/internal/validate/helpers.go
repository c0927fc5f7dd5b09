package validate

import (
	"fmt"
	"io"
	"os"

	"github.com/Dqrshan/discord-interactions/cmd/discord-interactions/internal"
	"github.com/Dqrshan/discord-interactions/pkg/components"
	"github.com/Dqrshan/discord-interactions/pkg/logger"
)

type options struct {
	path       string
	configPath string
	message    bool
	debug      bool
}

func validateCmd(in io.Reader, out io.Writer, opts options) error {
	cfg, err := internal.LoadConfig(opts.configPath, opts.debug)
	if err != nil {
		return err
	}

	data, err := readPayload(in, opts.path)
	if err != nil {
		return err
	}

	list, err := components.ParseComponents(data)
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	v := components.NewValidator(cfg.ComponentLimits())
	var violations components.Violations
	if opts.message {
		violations = collect(v.ValidateMessage(list))
	} else {
		for i, c := range list {
			for _, vi := range collect(v.Validate(c)) {
				if len(list) > 1 {
					vi.Field = fmt.Sprintf("[%d].%s", i, vi.Field)
				}
				violations = append(violations, vi)
			}
		}
	}

	logger.InfoCF("validate", "Payload checked", map[string]any{
		"components": len(list),
		"violations": len(violations),
		"message":    opts.message,
	})

	if len(violations) == 0 {
		fmt.Fprintf(out, "✓ %d component(s) valid\n", len(list))
		return nil
	}
	for _, vi := range violations {
		fmt.Fprintln(out, vi.String())
	}
	return fmt.Errorf("%d constraint violation(s)", len(violations))
}

func collect(err error) components.Violations {
	vs, _ := components.AsViolations(err)
	return vs
}

func readPayload(in io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return data, nil
}
