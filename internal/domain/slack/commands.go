package slack

import (
	"fmt"
	"strconv"
	"strings"
)

type CommandType string

const (
	CmdSummary      CommandType = "resumen"
	CmdProfessional CommandType = "profesional"
	CmdSchedule     CommandType = "agenda"
	CmdHelp         CommandType = "ayuda"
)

// DefaultSummaryDays is the window of "resumen" when no day count is given
const DefaultSummaryDays = 7

// MaxSummaryDays caps the window a single command may ask for
const MaxSummaryDays = 366

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "resumen", "summary":
		cmd.Type = CmdSummary
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "profesional", "professional", "prof":
		cmd.Type = CmdProfessional
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "agenda", "schedule":
		cmd.Type = CmdSchedule
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "ayuda", "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("comando desconocido: %s", parts[0])
	}

	return cmd, nil
}

// Days returns the window in days of a summary command
func (c *Command) Days() (int, error) {
	if len(c.Args) == 0 {
		return DefaultSummaryDays, nil
	}
	days, err := strconv.Atoi(c.Args[0])
	if err != nil || days < 1 || days > MaxSummaryDays {
		return 0, fmt.Errorf("cantidad de días inválida: %s (usá un número entre 1 y %d)", c.Args[0], MaxSummaryDays)
	}
	return days, nil
}

// Name joins the arguments back into a professional name, so "PEREZ, ANA" survives the split
func (c *Command) Name() string {
	return strings.Join(c.Args, " ")
}

func GetHelpText() string {
	return `*Comandos disponibles:*

*Reportes:*
• ` + "`/ausencias resumen [días]`" + ` - Sesiones canceladas de los últimos días (por defecto 7)
• ` + "`/ausencias profesional NOMBRE`" + ` - Ausencias y sesiones canceladas de un profesional

*Agenda:*
• ` + "`/ausencias agenda NOMBRE`" + ` - Sesiones semanales de un profesional por día

*Ayuda:*
• ` + "`/ausencias ayuda`" + ` - Muestra este mensaje`
}
