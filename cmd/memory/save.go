package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var flagSlot string

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Inspect or reset saved progress",
	Long: `Inspect or reset saved games and level progress.

Saves live in the backend chosen with --saves. SSH players each have
their own slot, named after their SSH user; select it with --slot.

Examples:
  memory save list
  memory save show
  memory save show memory_custom
  memory save clear --slot alice
  memory save reset`,
}

var saveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games in every slot",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withSaves(func(saves storage.SaveBackend) error {
			return listSaves(os.Stdout, saves)
		})
	},
}

var saveShowCmd = &cobra.Command{
	Use:   "show [mode]",
	Short: "Show the saved game of a mode",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		mode := modeArg(args)
		withSaves(func(saves storage.SaveBackend) error {
			return showSave(os.Stdout, saves, mode, flagSlot)
		})
	},
}

var saveClearCmd = &cobra.Command{
	Use:   "clear [mode]",
	Short: "Delete the saved game of a mode (level progress is kept)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		mode := modeArg(args)
		withSaves(func(saves storage.SaveBackend) error {
			saveKey, _ := memory.SlotKeys(mode, flagSlot)
			if err := saves.Delete(saveKey); err != nil {
				return err
			}
			fmt.Printf("Cleared %s\n", saveKey)
			return nil
		})
	},
}

var saveResetCmd = &cobra.Command{
	Use:   "reset [mode]",
	Short: "Delete the saved game and restart from level 1",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		mode := modeArg(args)
		withSaves(func(saves storage.SaveBackend) error {
			return resetProgress(saves, mode, flagSlot)
		})
	},
}

func init() {
	saveCmd.PersistentFlags().StringVar(&flagSlot, "slot", "", "Save slot (SSH user name; empty for local play)")
	saveCmd.AddCommand(saveListCmd, saveShowCmd, saveClearCmd, saveResetCmd)
}

// modeArg returns the mode named in args, exiting on unknown modes.
func modeArg(args []string) string {
	mode := string(memory.ModeCampaign)
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		os.Exit(1)
	}
	return mode
}

// withSaves opens the save backend, runs fn and exits on error.
func withSaves(fn func(storage.SaveBackend) error) {
	logger, closeLog := newLogger()
	defer closeLog()

	s, err := openStores(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	err = fn(s.saves)
	s.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// listSaves prints every stored save key.
func listSaves(w io.Writer, saves storage.SaveBackend) error {
	keys, err := saves.Keys("")
	if err != nil {
		return err
	}

	found := 0
	for _, key := range keys {
		if !strings.HasSuffix(key, "/"+engine.DefaultSaveKey) {
			continue
		}
		rec, ok := engine.Load(saves, key)
		status := "unreadable"
		if ok {
			status = fmt.Sprintf("%dx%d, score %d, lives %d", rec.Rows, rec.Columns, rec.Score, rec.Lives)
		}
		fmt.Fprintf(w, "  %-40s  %s\n", key, status)
		found++
	}
	if found == 0 {
		fmt.Fprintln(w, "No saved games.")
	}
	return nil
}

// showSave prints a decoded save record and the level progress.
func showSave(w io.Writer, saves storage.SaveBackend, mode, slot string) error {
	saveKey, levelKey := memory.SlotKeys(mode, slot)
	level := saves.GetInt(levelKey, 1)

	fmt.Fprintf(w, "%s\n", registry.Title(mode))
	fmt.Fprintf(w, "  Level:   %d\n", level)

	raw, found, err := saves.Get(saveKey)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(w, "  No saved game.")
		return nil
	}
	rec, ok := engine.Decode(raw)
	if !ok {
		fmt.Fprintln(w, "  Saved game is corrupt and will be replaced by a fresh deal.")
		return nil
	}

	matched := 0
	for _, m := range rec.GridCardMatched {
		if m {
			matched++
		}
	}
	fmt.Fprintf(w, "  Grid:    %dx%d\n", rec.Rows, rec.Columns)
	fmt.Fprintf(w, "  Score:   %d\n", rec.Score)
	fmt.Fprintf(w, "  Lives:   %d\n", rec.Lives)
	fmt.Fprintf(w, "  Moves:   %d\n", rec.Moves)
	fmt.Fprintf(w, "  Turn:    %d\n", rec.TurnNumber)
	fmt.Fprintf(w, "  Combo:   %d\n", rec.Combo)
	fmt.Fprintf(w, "  Pairs:   %d/%d\n", matched/2, len(rec.GridCardTypes)/2)
	fmt.Fprintln(w)

	// Matched cards show their type, hidden ones a dot.
	for r := 0; r < rec.Rows; r++ {
		var line strings.Builder
		line.WriteString("  ")
		for c := 0; c < rec.Columns; c++ {
			i := r*rec.Columns + c
			if rec.GridCardMatched[i] {
				fmt.Fprintf(&line, "%3d", rec.GridCardTypes[i])
			} else {
				line.WriteString("  .")
			}
		}
		fmt.Fprintln(w, line.String())
	}
	return nil
}

// resetProgress deletes the save and sets the level back to 1.
func resetProgress(saves storage.SaveBackend, mode, slot string) error {
	saveKey, levelKey := memory.SlotKeys(mode, slot)
	if err := saves.Delete(saveKey); err != nil {
		return err
	}
	if err := saves.SetInt(levelKey, 1); err != nil {
		return err
	}
	fmt.Printf("Reset %s to level 1\n", levelKey)
	return nil
}
