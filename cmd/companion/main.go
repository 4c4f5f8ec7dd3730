package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fdumary/AI-Companion/internal/cloudsync"
	"github.com/fdumary/AI-Companion/internal/companion"
	"github.com/fdumary/AI-Companion/internal/config"
	"github.com/fdumary/AI-Companion/internal/delivery"
	"github.com/fdumary/AI-Companion/internal/storage"
	v "github.com/fdumary/AI-Companion/internal/version"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          v.AppName,
	})

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	logger.Info("starting", "app", v.AppFullName, "storage", cfg.StoragePath)

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		logger.Fatal("storage", "err", err)
	}
	defer store.Close()

	var syncer *cloudsync.Syncer
	if cfg.SyncDir != "" {
		remote, err := cloudsync.NewDirRemote(cfg.SyncDir)
		if err != nil {
			logger.Fatal("sync", "err", err)
		}
		syncer = cloudsync.NewSyncer(remote, logger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sig
		logger.Info("received signal, shutting down", "signal", s)
		cancel()
	}()

	engine := companion.New(logger)
	pacer := delivery.NewScheduler(logger)

	if err := runChat(ctx, cfg, logger, store, engine, pacer, syncer); err != nil {
		logger.Error("chat", "err", err)
	}

	if syncer != nil {
		syncer.Flush(context.Background())
	}
	if err := store.Flush(); err != nil {
		logger.Error("final save", "err", err)
	}
	logger.Info("exited cleanly")
}

func runChat(ctx context.Context, cfg *config.Config, logger *log.Logger, store *storage.Storage, engine *companion.Engine, pacer *delivery.Scheduler, syncer *cloudsync.Syncer) error {
	profile, err := store.Profile(cfg.UserID)
	if err != nil {
		return err
	}
	history, err := store.History(cfg.UserID)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		welcome := engine.Welcome(profile.Name)
		fmt.Println("eli>", welcome.Text)
		if err := store.AppendMessages(cfg.UserID, welcome); err != nil {
			return err
		}
		history = append(history, welcome)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if quit := runCommand(line, profile, engine); quit {
				return nil
			}
			continue
		}

		userMsg := companion.Message{
			ID:        uuid.NewString(),
			Sender:    companion.SenderUser,
			Text:      line,
			Timestamp: time.Now(),
		}

		reply := engine.Respond(line, history, profile)

		delivered := make(chan struct{})
		pacer.Schedule(delivery.PaceDelay(profile.Preferences.ChatPace), func() {
			fmt.Println("eli>", reply.Text)
			close(delivered)
		})

		select {
		case <-delivered:
		case <-ctx.Done():
			pacer.Reset()
			return nil
		}

		history = append(history, userMsg, reply)
		if err := store.AppendMessages(cfg.UserID, userMsg, reply); err != nil {
			return err
		}
		if err := store.SaveProfile(cfg.UserID, profile); err != nil {
			return err
		}
		if syncer != nil && profile.Preferences.CloudSync {
			if snap, err := store.Snapshot(cfg.UserID); err == nil {
				syncer.Enqueue(cfg.UserID, snap)
			} else {
				logger.Warn("snapshot", "err", err)
			}
		}

		if len(profile.Sessions) > 0 && companion.ShouldOfferCheckIn(profile.Sessions[len(profile.Sessions)-1].MessageCount) {
			fmt.Println("eli>", engine.GuidedPrompt(companion.PromptCheckIns))
		}
	}
}

// runCommand handles slash commands. Returns true when the REPL should exit.
func runCommand(line string, profile *companion.UserProfile, engine *companion.Engine) bool {
	switch line {
	case "/quit", "/exit":
		return true
	case "/memories":
		if len(profile.Memories) == 0 {
			fmt.Println("(no memories yet)")
			return false
		}
		for _, m := range profile.Memories {
			fmt.Printf("  [%s] %s (%s)\n", m.Category, m.Fact, m.CreatedAt.Format("2006-01-02"))
		}
	case "/prompt":
		fmt.Println("eli>", engine.GuidedPrompt(companion.PromptCheckIns))
	case "/help":
		fmt.Println("commands: /memories /prompt /quit")
	default:
		fmt.Println("unknown command, try /help")
	}
	return false
}
