package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/inframe/campus-portal/pkg/client"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List course categories and their programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		courses, err := newClient().ListCourses(ctx)
		if err != nil {
			return err
		}
		color.Yellow("\nCourses (%d)", len(courses))
		renderCourses(cmd.OutOrStdout(), courses)
		return nil
	},
}

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "List published blog posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		posts, err := newClient().ListBlogs(ctx)
		if err != nil {
			return err
		}
		color.Yellow("\nBlog posts (%d)", len(posts))
		renderBlogPosts(cmd.OutOrStdout(), posts)
		return nil
	},
}

var partnersCmd = &cobra.Command{
	Use:   "partners",
	Short: "List industry partners",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		partners, err := newClient().ListIndustryPartnersWithRetry(ctx)
		if err != nil {
			return err
		}
		color.Yellow("\nIndustry partners (%d)", len(partners))

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"ID", "Name", "Logo"})
		for _, p := range partners {
			table.Append([]string{p.ID, p.Name, p.Src})
		}
		table.Render()
		return nil
	},
}

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "List active job openings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		posts, err := newClient().ListActiveCareerPosts(ctx)
		if err != nil {
			return err
		}
		color.Yellow("\nJob openings (%d)", len(posts))

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"ID", "Title", "Place", "Part time"})
		for _, p := range posts {
			table.Append([]string{p.ID, p.Title, p.Place, strconv.FormatBool(p.PartTime)})
		}
		table.Render()
		return nil
	},
}

func renderCourses(w io.Writer, courses []client.Course) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Slug", "Title", "Programs"})
	for _, c := range courses {
		table.Append([]string{c.Slug, c.Title, strconv.Itoa(len(c.Programs))})
	}
	table.Render()
}

func renderBlogPosts(w io.Writer, posts []client.BlogPost) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Slug", "Title", "Category", "Date"})
	for _, p := range posts {
		table.Append([]string{p.Slug, p.Title, p.Category, p.Date})
	}
	table.Render()
	fmt.Fprintln(w)
}
