package logger

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// prettyEncoder prints a colored header line followed by the entry's fields
// as indented JSON.
type prettyEncoder struct {
	// Encoder renders context fields only; header keys are blanked out.
	zapcore.Encoder

	pool buffer.Pool
}

func newPrettyEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	cfg.MessageKey = ""
	cfg.LevelKey = ""
	cfg.NameKey = ""
	cfg.TimeKey = ""
	cfg.LineEnding = ""

	return &prettyEncoder{
		Encoder: zapcore.NewJSONEncoder(cfg),
		pool:    buffer.NewPool(),
	}
}

func (e *prettyEncoder) Clone() zapcore.Encoder {
	return &prettyEncoder{Encoder: e.Encoder.Clone(), pool: e.pool}
}

func (e *prettyEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	fieldsBuf, err := e.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}
	defer fieldsBuf.Free()

	buf := e.pool.Get()
	buf.AppendString(color.New(color.Faint).Sprint(ent.Time.Format(time.TimeOnly)))
	buf.AppendByte(' ')
	buf.AppendString(levelColor(ent.Level).Sprintf("%-5s", ent.Level.CapitalString()))
	if ent.LoggerName != "" {
		buf.AppendString(color.New(color.FgCyan).Sprint(" [" + ent.LoggerName + "]"))
	}
	buf.AppendByte(' ')
	buf.AppendString(ent.Message)

	raw := bytes.TrimSpace(fieldsBuf.Bytes())
	if len(raw) > len("{}") {
		var indented bytes.Buffer
		if json.Indent(&indented, raw, "", "  ") == nil {
			buf.AppendByte('\n')
			_, _ = buf.Write(indented.Bytes())
		} else {
			buf.AppendByte(' ')
			_, _ = buf.Write(raw)
		}
	}
	buf.AppendString(zapcore.DefaultLineEnding)

	return buf, nil
}

func levelColor(l zapcore.Level) *color.Color {
	switch l {
	case zapcore.DebugLevel:
		return color.New(color.FgBlue)
	case zapcore.InfoLevel:
		return color.New(color.FgGreen)
	case zapcore.WarnLevel:
		return color.New(color.FgYellow)
	case zapcore.InvalidLevel:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
