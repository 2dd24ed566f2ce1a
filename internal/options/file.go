package options

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/errors"
)

// Player is one decoded player file
type Player struct {
	Name    string
	Options *Options
}

// LoadPlayer reads a player YAML file. The file carries the player name,
// the game name and an options section keyed by the game name:
//
//	name: Egg
//	game: An Untitled Story
//	An Untitled Story:
//	  gold_orbs_required: 5
//	  arcade_mode: must_win
func LoadPlayer(path string) (*Player, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read player file %s", path)
	}

	p, err := ParsePlayer(b)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return p, nil
}

// ParsePlayer decodes player YAML, resolves the options section and checks
// it against the JSON schema
func ParsePlayer(data []byte) (*Player, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid player yaml")
	}

	vb := errors.NewValidationBuilder()
	name, _ := doc["name"].(string)
	errors.ValidateRequired("name", name, vb)

	game, _ := doc["game"].(string)
	if game != aus.Game {
		vb.Fieldf("game", "must be %q, got %q", aus.Game, game)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	section := map[string]any{}
	if raw, ok := doc[aus.Game]; ok && raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, errors.InvalidArgumentf("%s section must be a mapping, got %T", aus.Game, raw)
		}
		section = m
	}

	opts, err := Resolve(section)
	if err != nil {
		return nil, err
	}
	if err := Validate(section); err != nil {
		return nil, err
	}

	return &Player{Name: strings.TrimSpace(name), Options: opts}, nil
}

// Template renders a commented player YAML file holding every option at
// its default
func Template(playerName string) ([]byte, error) {
	section := &yaml.Node{Kind: yaml.MappingNode}
	for _, d := range definitions {
		key := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       d.Key,
			HeadComment: templateComment(d),
		}
		section.Content = append(section.Content, key, defaultNode(d))
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		scalar("name"), scalar(playerName),
		scalar("game"), scalar(aus.Game),
		scalar(aus.Game), section,
	)

	out, err := yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render options template")
	}
	return out, nil
}

func templateComment(d Definition) string {
	lines := []string{fmt.Sprintf("%s: %s", d.DisplayName, d.Description)}
	switch d.Kind {
	case KindRange:
		lines = append(lines, fmt.Sprintf("%d to %d", d.Min, d.Max))
	case KindNamedRange:
		lines = append(lines, fmt.Sprintf("%d to %d, or one of: %s", d.Min, d.Max, strings.Join(d.nameList(), ", ")))
	case KindChoice:
		lines = append(lines, "one of: "+strings.Join(d.nameList(), ", "))
	case KindToggle:
		lines = append(lines, "true or false")
	}
	for i, l := range lines {
		lines[i] = "# " + l
	}
	return strings.Join(lines, "\n")
}

func defaultNode(d Definition) *yaml.Node {
	switch d.Kind {
	case KindToggle:
		if d.Default == 1 {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	case KindChoice, KindNamedRange:
		if name := d.Name(d.Default); name != "" {
			return scalar(name)
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(d.Default)}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
