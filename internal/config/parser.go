package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/emberhealth/medtheme/internal/token"
	medthemeerrors "github.com/emberhealth/medtheme/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a palette definition from disk, validates it, and converts
// it to resolver input tables.
func ParseFile(path string) (token.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return token.Palette{}, medthemeerrors.NewParseError(path, 0, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes is ParseFile over in-memory content. The path only labels
// errors; baseline comparison uses this to parse file content read out of a
// git commit.
func ParseBytes(data []byte, path string) (token.Palette, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return token.Palette{}, medthemeerrors.NewParseError(path, extractLine(err), err)
	}

	if err := validateFile(&file); err != nil {
		return token.Palette{}, err
	}

	return convert(&file)
}

// LoadResolver builds a resolver from a palette file, running the full
// completeness validation on the way.
func LoadResolver(path string) (*token.Resolver, error) {
	palette, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return token.NewResolver(palette)
}

func convert(file *File) (token.Palette, error) {
	palette := token.Palette{
		Base:        make(map[token.Family]map[token.Shade]string, len(file.Palette)),
		Contexts:    make(map[token.Context]map[token.Slot]string, len(file.Contexts)),
		Dark:        make(map[token.Slot]string, len(file.Dark)),
		ContextDark: make(map[token.Context]map[token.Slot]string, len(file.DarkContexts)),
	}

	for familyName, shades := range file.Palette {
		family, err := token.ParseFamily(familyName)
		if err != nil {
			return token.Palette{}, err
		}

		palette.Base[family] = make(map[token.Shade]string, len(shades))
		for shadeName, value := range shades {
			shade, err := token.ParseShade(shadeName)
			if err != nil {
				return token.Palette{}, medthemeerrors.NewValidationError(
					fmt.Sprintf("palette.%s", familyName), err.Error(), err)
			}
			palette.Base[family][shade] = value
		}
	}

	for contextName, overrides := range file.Contexts {
		context, err := token.ParseContext(contextName)
		if err != nil {
			return token.Palette{}, err
		}
		converted, err := convertOverrides(fmt.Sprintf("contexts.%s", contextName), overrides)
		if err != nil {
			return token.Palette{}, err
		}
		palette.Contexts[context] = converted
	}

	converted, err := convertOverrides("dark", file.Dark)
	if err != nil {
		return token.Palette{}, err
	}
	palette.Dark = converted

	for contextName, overrides := range file.DarkContexts {
		context, err := token.ParseContext(contextName)
		if err != nil {
			return token.Palette{}, err
		}
		converted, err := convertOverrides(fmt.Sprintf("dark_contexts.%s", contextName), overrides)
		if err != nil {
			return token.Palette{}, err
		}
		palette.ContextDark[context] = converted
	}

	return palette, nil
}

func convertOverrides(section string, overrides map[string]string) (map[token.Slot]string, error) {
	converted := make(map[token.Slot]string, len(overrides))
	for slotName, value := range overrides {
		slot, err := token.ParseSlot(slotName)
		if err != nil {
			return nil, medthemeerrors.NewValidationError(
				fmt.Sprintf("%s.%s", section, slotName), err.Error(), err)
		}
		converted[slot] = value
	}
	return converted, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
