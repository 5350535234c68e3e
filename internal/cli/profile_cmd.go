package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/repository"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "管理个人画像",
	}
	cmd.AddCommand(
		newProfileSetCmd(app),
		newProfileShowCmd(app),
	)
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var traitsFlag, platform, mentors, serendipity string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "填写或更新个人画像",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p := &domain.UserProfile{UserID: app.UserID}
			if existing, err := app.Profile.Get(ctx, app.UserID); err == nil {
				p = existing
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}

			// Flags take precedence; the form only runs on a terminal with
			// no flags given.
			flagged := traitsFlag != "" || platform != "" || mentors != "" || serendipity != ""
			if flagged {
				if traitsFlag != "" {
					p.Traits = splitTraits(traitsFlag)
				}
				if platform != "" {
					p.Platform = platform
				}
				if mentors != "" {
					p.Mentors = mentors
				}
				if serendipity != "" {
					p.Serendipity = serendipity
				}
			} else {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("非交互式终端，请通过 --traits 等参数提供画像内容")
				}
				if err := runProfileForm(p); err != nil {
					return err
				}
			}

			if err := app.Profile.Save(ctx, p); err != nil {
				return err
			}
			fmt.Println("个人画像已保存。")
			return nil
		},
	}

	cmd.Flags().StringVar(&traitsFlag, "traits", "", "个人独特性，逗号分隔（如：好奇心强,擅长沟通）")
	cmd.Flags().StringVar(&platform, "platform", "", "大学平台（学校、专业、可用资源）")
	cmd.Flags().StringVar(&mentors, "mentors", "", "重要他人的期望与影响")
	cmd.Flags().StringVar(&serendipity, "serendipity", "", "印象深刻的机缘巧合经历")

	return cmd
}

func runProfileForm(p *domain.UserProfile) error {
	traits := strings.Join(p.Traits, "，")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("个人独特性").
				Description("你的性格、兴趣与擅长之处，用逗号分隔多个条目").
				Value(&traits),
			huh.NewText().
				Title("大学平台").
				Description("学校、专业以及你能触及的资源").
				Value(&p.Platform),
			huh.NewText().
				Title("重要他人").
				Description("父母、老师或朋友对你职业选择的期望").
				Value(&p.Mentors),
			huh.NewText().
				Title("机缘巧合").
				Description("一段让你印象深刻的偶然经历").
				Value(&p.Serendipity),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	p.Traits = splitTraits(traits)
	return nil
}

// splitTraits accepts both Chinese and ASCII commas.
func splitTraits(s string) []string {
	s = strings.ReplaceAll(s, "，", ",")
	parts := strings.Split(s, ",")
	traits := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			traits = append(traits, trimmed)
		}
	}
	return traits
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "查看当前画像",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background(), app.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					fmt.Println("尚未填写个人画像，请先运行 licheng profile set")
					return nil
				}
				return err
			}

			fmt.Println(titleStyle.Render("个人画像"))
			fmt.Printf("%s %s\n", sectionStyle.Render("个人独特性:"), strings.Join(p.Traits, "、"))
			fmt.Printf("%s %s\n", sectionStyle.Render("大学平台:"), p.Platform)
			fmt.Printf("%s %s\n", sectionStyle.Render("重要他人:"), p.Mentors)
			fmt.Printf("%s %s\n", sectionStyle.Render("机缘巧合:"), p.Serendipity)
			return nil
		},
	}
}
