package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"social-client/config"
	"social-client/internal/api/rest"
	"social-client/internal/errors"
	"social-client/internal/service"
	"social-client/internal/session"
	"social-client/internal/transport"
	"social-client/internal/util"

	"github.com/spf13/cobra"
)

// app 聚合 SDK 的全部构件，充当被排除的 UI 层的替身
type app struct {
	store *session.Store
	auth  *service.AuthService
	feed  *service.FeedService
	likes *service.LikeCoordinator
}

func newApp() *app {
	client := transport.NewClient(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.RequestTimeout)*time.Second,
		transport.AuthMode(config.AppConfig.AuthMode),
	)
	store := session.NewStore(session.NewFileStore(config.AppConfig.SessionFile))
	feed := service.NewFeedService(rest.NewFeedAPI(client), store)

	return &app{
		store: store,
		auth:  service.NewAuthService(rest.NewAuthAPI(client), store),
		feed:  feed,
		likes: service.NewLikeCoordinator(feed, store),
	}
}

// restore 在每次启动时尝试恢复持久化会话
func (a *app) restore(ctx context.Context) {
	if a.store.Bootstrap() != session.StateRestoring {
		return
	}
	if _, err := a.auth.RestoreSession(ctx); err != nil {
		fmt.Println("Stored session is no longer valid, please log in again.")
	}
}

func fail(err error) error {
	return fmt.Errorf("%s", errors.UserMessage(err))
}

func main() {
	config.Init()
	util.InitLogger(config.AppConfig.LogLevel, config.AppConfig.Debug)
	defer func() { _ = util.Logger.Sync() }()

	a := newApp()
	ctx := context.Background()

	root := &cobra.Command{
		Use:           "social-client",
		Short:         "Command line client for the social feed service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.restore(ctx)
		},
	}

	var email, username, password string
	register := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.auth.Register(ctx, username, email, password)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Registered %s (id %d). You can log in now.\n", user.Username, user.ID)
			return nil
		},
	}
	register.Flags().StringVar(&username, "username", "", "username")
	register.Flags().StringVar(&email, "email", "", "email address")
	register.Flags().StringVar(&password, "password", "", "password")

	var identifier string
	login := &cobra.Command{
		Use:   "login",
		Short: "Log in with email or username",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.auth.Login(ctx, identifier, password)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Welcome back, %s!\n", user.DisplayName())
			return nil
		},
	}
	login.Flags().StringVar(&identifier, "user", "", "email or username")
	login.Flags().StringVar(&password, "password", "", "password")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(); err != nil {
				return fail(err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Run: func(cmd *cobra.Command, args []string) {
			user := a.store.CurrentUser()
			if user == nil {
				fmt.Println("Not logged in.")
				return
			}
			fmt.Printf("%s <%s> (id %d, role %s)\n", user.Username, user.Email, user.ID, user.Role)
		},
	}

	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := a.feed.FetchFeed(ctx)
			if err != nil {
				return fail(err)
			}
			for _, post := range posts {
				view := post.ToView()
				liked := " "
				if view.IsLiked {
					liked = "♥"
				}
				when := view.RelativeTime
				if when == "" {
					when = view.CreatedAt
				}
				fmt.Printf("[%d] %s %s (%s)\n    %s\n", view.ID, liked, view.DisplayName, when, view.Content)
			}
			return nil
		},
	}

	var content, imageURL string
	post := &cobra.Command{
		Use:   "post",
		Short: "Publish a new post",
		RunE: func(cmd *cobra.Command, args []string) error {
			trimmed := strings.TrimSpace(content)
			if trimmed == "" {
				return fmt.Errorf("post content must not be empty")
			}
			var img *string
			if imageURL != "" {
				img = &imageURL
			}
			created, err := a.feed.CreatePost(ctx, trimmed, img)
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Posted (id %d).\n", created.ID)
			return nil
		},
	}
	post.Flags().StringVar(&content, "content", "", "post text")
	post.Flags().StringVar(&imageURL, "image", "", "optional image url")

	like := &cobra.Command{
		Use:   "like <post-id>",
		Short: "Toggle like on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := a.feed.FetchPost(ctx, id)
			if err != nil {
				return fail(err)
			}
			liked := a.likes.ToggleLike(ctx, id, current.IsLiked)
			if liked {
				fmt.Println("Liked.")
			} else {
				fmt.Println("Unliked.")
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			confirmation, err := a.feed.DeletePost(ctx, id)
			if err != nil {
				return fail(err)
			}
			fmt.Println(confirmation)
			return nil
		},
	}

	comments := &cobra.Command{
		Use:   "comments <post-id>",
		Short: "List comments on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			list, err := a.feed.FetchComments(ctx, id)
			if err != nil {
				return fail(err)
			}
			for _, comment := range list {
				fmt.Printf("%s: %s\n", comment.Author.Username, comment.Content)
			}
			return nil
		},
	}

	comment := &cobra.Command{
		Use:   "comment <post-id> <text>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			created, err := a.feed.AddComment(ctx, id, args[1])
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Comment %d added.\n", created.ID)
			return nil
		},
	}

	var fullName, bio, avatar string
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.auth.UpdateProfile(ctx, optional(fullName), optional(bio), optional(avatar))
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Profile updated for %s.\n", user.DisplayName())
			return nil
		},
	}
	profile.Flags().StringVar(&fullName, "full-name", "", "full name")
	profile.Flags().StringVar(&bio, "bio", "", "bio")
	profile.Flags().StringVar(&avatar, "image", "", "profile image url")

	root.AddCommand(register, login, logout, whoami, feedCmd, post, like, deleteCmd, comments, comment, profile)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id: %s", s)
	}
	return id, nil
}
