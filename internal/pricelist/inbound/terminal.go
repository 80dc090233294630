package inbound

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/pricelist/internal/pricelist/usecase"
)

const (
	promptText   = `Введите название товара для поиска (или "exit" для завершения): `
	exitCommand  = "exit"
	searchDone   = "Поиск выполнен успешно"
	sessionDone  = "Работа завершена"
	exportedText = "Данные успешно экспортированы в файл: %s\n"
)

type GridRenderer interface {
	RenderGrid(w io.Writer, hits []usecase.SearchHit) error
}

// Session is the interactive search prompt. It reads queries from in until
// "exit" or end of input, then writes the HTML snapshot to the export path.
type Session struct {
	uc         uc
	grid       GridRenderer
	in         io.Reader
	out        io.Writer
	exportPath string
}

func NewSession(uc uc, grid GridRenderer, in io.Reader, out io.Writer, exportPath string) *Session {
	return &Session{uc: uc, grid: grid, in: in, out: out, exportPath: exportPath}
}

func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)

	for ctx.Err() == nil {
		fmt.Fprint(s.out, promptText)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}

		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.EqualFold(text, exitCommand) {
			break
		}

		if err := s.search(ctx, text); err != nil {
			slog.ErrorContext(ctx, "search failed", "query", text, "error", err)
			fmt.Fprintf(s.out, "Ошибка поиска: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		slog.ErrorContext(ctx, "failed to read terminal input", "error", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintln(s.out, sessionDone)

	if err := s.uc.ExportFile(ctx, s.exportPath); err != nil {
		return err
	}
	fmt.Fprintf(s.out, exportedText, s.exportPath)

	return nil
}

func (s *Session) search(ctx context.Context, text string) error {
	result, err := s.uc.Search(ctx, usecase.SearchQuery{Text: text})
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, searchDone)
	return s.grid.RenderGrid(s.out, result.Hits)
}
