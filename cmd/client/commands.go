// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-mini-blog/internal/adapter"
	"github.com/MKhiriev/go-mini-blog/models"
)

const usage = `usage: mini-blog-client <command> [flags]

commands:
  create    -name -content -status -author [-category]
  update    -id -name -content -status -author -password [-category]
  get       -id
  list      [-page] [-size] [-sort field,dir]...
  delete    -id -author -password
  register  -username -password
  author    -id
  passwd    -username -password -new
  version
  build-info`

var errUsage = errors.New(usage)

// run executes one client command and writes its JSON result to out.
func run(ctx context.Context, client adapter.BlogClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch command {
	case "create", "update":
		var card cardFlags
		card.register(fs, command == "update")
		if err := fs.Parse(args); err != nil {
			return err
		}

		dto := card.dto()
		var (
			result models.CardDTO
			err    error
		)
		if command == "create" {
			result, err = client.CreateCard(ctx, dto)
		} else {
			result, err = client.UpdateCard(ctx, dto)
		}
		if err != nil {
			return err
		}
		return printJSON(out, result)

	case "get":
		id := fs.Int64("id", 0, "card id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		card, err := client.GetCard(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(out, card)

	case "list":
		page := fs.Int("page", 0, "zero-based page")
		size := fs.Int("size", models.DefaultPageSize, "page size")
		var sort sortFlag
		fs.Var(&sort, "sort", "field[,asc|desc], repeatable")
		if err := fs.Parse(args); err != nil {
			return err
		}
		result, err := client.ListCards(ctx, models.PageRequest{Page: *page, Size: *size, Sort: sort})
		if err != nil {
			return err
		}
		return printJSON(out, map[string]any{
			"items":      result.Items,
			"total":      result.Total,
			"page":       result.Page,
			"totalPages": result.TotalPages(),
		})

	case "delete":
		id := fs.Int64("id", 0, "card id")
		author := fs.String("author", "", "author username")
		password := fs.String("password", "", "author password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := client.DeleteCard(ctx, *id, *author, *password); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "card %d deleted\n", *id)
		return err

	case "register":
		username := fs.String("username", "", "author username")
		password := fs.String("password", "", "author password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		author, err := client.RegisterAuthor(ctx, models.Author{Username: *username, Password: *password})
		if err != nil {
			return err
		}
		return printJSON(out, author)

	case "author":
		id := fs.Int64("id", 0, "author id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		author, err := client.GetAuthor(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(out, author)

	case "passwd":
		username := fs.String("username", "", "author username")
		password := fs.String("password", "", "current password")
		newPassword := fs.String("new", "", "new password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		author, err := client.ChangePassword(ctx, *username, *password, *newPassword)
		if err != nil {
			return err
		}
		return printJSON(out, author)

	case "version":
		version, err := client.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, version)
		return err

	case "build-info":
		printBuildInfo()
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%w", command, errUsage)
	}
}

type cardFlags struct {
	id       int64
	name     string
	content  string
	status   string
	author   string
	password string
	category int64
}

func (c *cardFlags) register(fs *flag.FlagSet, withCredentials bool) {
	if withCredentials {
		fs.Int64Var(&c.id, "id", 0, "card id")
		fs.StringVar(&c.password, "password", "", "author password")
	}
	fs.StringVar(&c.name, "name", "", "card name")
	fs.StringVar(&c.content, "content", "", "card content")
	fs.StringVar(&c.status, "status", "", "DRAFT, PUBLISHED or ARCHIVED")
	fs.StringVar(&c.author, "author", "", "author username")
	fs.Int64Var(&c.category, "category", 0, "category id")
}

func (c *cardFlags) dto() models.CardDTO {
	dto := models.CardDTO{
		Name:           c.name,
		Content:        c.content,
		Status:         models.Status(strings.ToUpper(c.status)),
		AuthorUsername: c.author,
		AuthorPassword: c.password,
	}
	if c.id != 0 {
		id := c.id
		dto.ID = &id
	}
	if c.category != 0 {
		category := c.category
		dto.CategoryID = &category
	}
	return dto
}

// sortFlag collects repeated -sort field[,asc|desc] values.
type sortFlag []models.Order

func (s *sortFlag) String() string {
	parts := make([]string, 0, len(*s))
	for _, order := range *s {
		direction := "asc"
		if order.Desc {
			direction = "desc"
		}
		parts = append(parts, order.Field+","+direction)
	}
	return strings.Join(parts, " ")
}

func (s *sortFlag) Set(value string) error {
	field, direction, _ := strings.Cut(value, ",")
	if field == "" {
		return fmt.Errorf("empty sort field in %q", value)
	}

	order := models.Order{Field: field}
	switch strings.ToLower(direction) {
	case "", "asc":
	case "desc":
		order.Desc = true
	default:
		return fmt.Errorf("unknown sort direction %q", direction)
	}

	*s = append(*s, order)
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
