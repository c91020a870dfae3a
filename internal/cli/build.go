package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// RunBuild reads a tree from inputPath (stdin when empty or "-"), builds it and
// writes the result to out.
func RunBuild(opts Options, inputPath string, out io.Writer, logger *slog.Logger) error {
	format, err := resolveFormat(opts.Format, inputPath)
	if err != nil {
		return err
	}

	engine, err := createEngine(opts, logger, nil)
	if err != nil {
		return err
	}

	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	var result []byte
	switch format {
	case FormatYAML:
		result, err = engine.BuildYAML(data)
	default:
		result, err = engine.BuildJSON(data, opts.Pretty)
		if err == nil {
			result = append(result, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	_, err = out.Write(result)
	return err
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
