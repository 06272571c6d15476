package api

import (
	"bufio"

	"github.com/gofiber/fiber/v2"
)

// flushWriter pushes every chunk the export service produces straight to the
// client, so transmission starts with the header row.
type flushWriter struct {
	writer *bufio.Writer
}

func (fw flushWriter) Write(p []byte) (int, error) {
	written, err := fw.writer.Write(p)
	if err != nil {
		return written, err
	}
	return written, fw.writer.Flush()
}

func (handler *Handler) ExportAnswersCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	responses, err := handler.surveyService.ListByOwner(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load answers")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="answers.csv"`)
	exportService := handler.exportService
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		// A write error means the consumer went away; stop producing and
		// let the connection close without failing the process.
		_ = exportService.WriteCSV(flushWriter{writer: w}, responses)
	})
	return nil
}
