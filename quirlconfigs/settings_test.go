package quirlconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/quirl/configs"
	"github.com/reusee/quirl/modes"
)

func withConfig(t *testing.T, content string) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", dir)
	if content != "" {
		if err := os.WriteFile(filepath.Join(dir, "quirl.cue"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)
}

func TestDefaults(t *testing.T) {
	withConfig(t, "")
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		prompt Prompt,
		historyFile HistoryFile,
		banner Banner,
		logLevel LogLevel,
	) {
		if prompt != defaultPrompt {
			t.Fatalf("got %q", prompt)
		}
		home, _ := os.UserHomeDir()
		if string(historyFile) != filepath.Join(home, ".quirl_history") {
			t.Fatalf("got %q", historyFile)
		}
		if !banner {
			t.Fatal()
		}
		if logLevel != "" {
			t.Fatalf("got %q", logLevel)
		}
	})
}

func TestConfigFile(t *testing.T) {
	withConfig(t, `
prompt: "bf> "
history_file: "-"
banner: false
`)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
		prompt Prompt,
		historyFile HistoryFile,
		banner Banner,
	) {
		if len(loader.Paths()) != 1 {
			t.Fatalf("got %v", loader.Paths())
		}
		if prompt != "bf> " {
			t.Fatalf("got %q", prompt)
		}
		if historyFile != "" {
			t.Fatalf("got %q", historyFile)
		}
		if banner {
			t.Fatal()
		}
	})
}

func TestFlagOverridesConfig(t *testing.T) {
	withConfig(t, `prompt: "bf> "`)
	*promptFlag = "$ "
	t.Cleanup(func() {
		*promptFlag = ""
	})
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		prompt Prompt,
	) {
		if prompt != "$ " {
			t.Fatalf("got %q", prompt)
		}
	})
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	withConfig(t, `prompts: "typo"`)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
	) {
		var s string
		if err := loader.AssignFirst("prompt", &s); err == nil {
			t.Fatal("should error")
		}
	})
}
