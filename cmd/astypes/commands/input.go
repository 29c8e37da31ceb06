package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/astypes/am"
	"github.com/teranos/astypes/conversion"
	"github.com/teranos/astypes/logger"
	"github.com/teranos/astypes/typemap"
)

const stdinName = "-"

// readInput returns the document named by args, or stdin when there is none.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, stdinName, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, stdinName, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, args[0], fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, args[0], nil
}

// newSerializer builds a serializer configured from am.
func newSerializer() (*conversion.Serializer, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	opts := conversion.OptionsFromConfig(cfg)
	opts.Logger = logger.ComponentLogger("cli")
	return conversion.NewSerializer(opts), nil
}

// decode reads the input document into a node.
func decode(cmd *cobra.Command, args []string) (*conversion.Serializer, *typemap.TypeMap, error) {
	data, name, err := readInput(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	s, err := newSerializer()
	if err != nil {
		return nil, nil, err
	}
	tm, err := s.Deserialize(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debugw("Decoded document",
		logger.FieldFile, name,
		logger.FieldSize, len(data),
		logger.FieldTypes, tm.Types())
	return s, tm, nil
}
