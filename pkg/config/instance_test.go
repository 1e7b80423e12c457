package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envkit/pkg/config"
	"github.com/dmitrymomot/envkit/pkg/primitive"
)

func ingestedInstance(t *testing.T, values map[string]string) *config.Instance {
	t.Helper()

	loader := config.LoaderFunc(func(context.Context, string) (map[string]string, error) {
		return values, nil
	})
	reg := config.New(config.WithStore(config.NewMapStore(nil)), config.WithLoader(loader))
	require.NoError(t, reg.Ingest(context.Background(), "memory"))

	inst, err := reg.Instance()
	require.NoError(t, err)
	return inst
}

func TestInstance_GetAll(t *testing.T) {
	t.Parallel()

	schema := config.NewSchema(
		config.Field{Key: "BOOLEAN", Primitive: primitive.Boolean},
		config.Field{Key: "STRING", Primitive: primitive.String},
		config.Field{Key: "NUMBER", Primitive: primitive.Number},
	)

	t.Run("parses truthy values as native types", func(t *testing.T) {
		t.Parallel()

		inst := ingestedInstance(t, map[string]string{"BOOLEAN": "true", "STRING": "string", "NUMBER": "1"})
		got, err := inst.GetAll(schema)
		require.NoError(t, err)
		assert.Equal(t, config.Resolved{"BOOLEAN": true, "STRING": "string", "NUMBER": 1.0}, got)
	})

	t.Run("parses falsy values like 'false', '' and '0'", func(t *testing.T) {
		t.Parallel()

		inst := ingestedInstance(t, map[string]string{"BOOLEAN": "false", "STRING": "", "NUMBER": "0"})
		got, err := inst.GetAll(schema)
		require.NoError(t, err)
		assert.Equal(t, config.Resolved{"BOOLEAN": false, "STRING": "", "NUMBER": 0.0}, got)
	})

	t.Run("non-literal booleans are false", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"TRUE", "yes", "1", ""} {
			inst := ingestedInstance(t, map[string]string{"FLAG": raw})
			got, err := inst.GetAll(config.NewSchema(config.Field{Key: "FLAG", Primitive: primitive.Boolean}))
			require.NoError(t, err)
			assert.Equal(t, false, got["FLAG"], "raw=%q", raw)
		}
	})

	t.Run("missing key fails and names the key", func(t *testing.T) {
		t.Parallel()

		inst := ingestedInstance(t, map[string]string{"BOOLEAN": "true", "STRING": "s", "NUMBER": "1"})
		got, err := inst.GetAll(config.NewSchema(
			config.Field{Key: "STRING", Primitive: primitive.String},
			config.Field{Key: "MISSING_KEY", Primitive: primitive.String},
		))
		require.ErrorIs(t, err, config.ErrMissingConfiguration)
		assert.Nil(t, got, "no partial result")
		assert.True(t, config.IsMissingConfigurationError(err))

		var me *config.MissingConfigurationError
		require.True(t, errors.As(err, &me))
		assert.Equal(t, "MISSING_KEY", me.Key)
		assert.EqualError(t, err, "missing required configuration: 'MISSING_KEY'")
	})

	t.Run("invalid number fails", func(t *testing.T) {
		t.Parallel()

		inst := ingestedInstance(t, map[string]string{"INVALID_TYPE": "invalid-number"})
		got, err := inst.GetAll(config.NewSchema(config.Field{Key: "INVALID_TYPE", Primitive: primitive.Number}))
		require.ErrorIs(t, err, config.ErrInvalidNumber)
		assert.Nil(t, got)

		var ne *primitive.InvalidNumberError
		require.True(t, errors.As(err, &ne))
		assert.Equal(t, "invalid-number", ne.Value)
	})

	t.Run("unsupported primitive fails with key and tag", func(t *testing.T) {
		t.Parallel()

		inst := ingestedInstance(t, map[string]string{"INVALID_TYPE": "{}"})
		got, err := inst.GetAll(config.NewSchema(config.Field{Key: "INVALID_TYPE", Primitive: "{}"}))
		require.ErrorIs(t, err, config.ErrUnsupportedPrimitive)
		assert.Nil(t, got)

		var ue *primitive.UnsupportedPrimitiveError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, "INVALID_TYPE", ue.Key)
		assert.Equal(t, primitive.Primitive("{}"), ue.Primitive)
	})

	t.Run("first failure in schema order wins", func(t *testing.T) {
		t.Parallel()

		inst := ingestedInstance(t, map[string]string{"BAD_NUMBER": "x"})

		_, err := inst.GetAll(config.NewSchema(
			config.Field{Key: "ABSENT", Primitive: primitive.String},
			config.Field{Key: "BAD_NUMBER", Primitive: primitive.Number},
		))
		assert.ErrorIs(t, err, config.ErrMissingConfiguration)

		_, err = inst.GetAll(config.NewSchema(
			config.Field{Key: "BAD_NUMBER", Primitive: primitive.Number},
			config.Field{Key: "ABSENT", Primitive: primitive.String},
		))
		assert.ErrorIs(t, err, config.ErrInvalidNumber)
	})

	t.Run("empty schema resolves to an empty map", func(t *testing.T) {
		t.Parallel()

		inst := ingestedInstance(t, nil)
		got, err := inst.GetAll(config.Schema{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("every call builds a fresh result", func(t *testing.T) {
		t.Parallel()

		inst := ingestedInstance(t, map[string]string{"NAME": "a"})
		s := config.NewSchema(config.Field{Key: "NAME", Primitive: primitive.String})

		first, err := inst.GetAll(s)
		require.NoError(t, err)
		first["NAME"] = "mutated"

		second, err := inst.GetAll(s)
		require.NoError(t, err)
		assert.Equal(t, "a", second["NAME"])
	})
}

func TestInstance_Integration(t *testing.T) {
	t.Parallel()

	reg := config.New(config.WithStore(config.NewMapStore(nil)))
	require.NoError(t, reg.Ingest(context.Background(), samplePath))
	inst, err := reg.Instance()
	require.NoError(t, err)

	got, err := inst.GetAll(config.SchemaFromMap(map[string]primitive.Primitive{
		"FALSY_BOOLEAN":  primitive.Boolean,
		"FALSY_STRING":   primitive.String,
		"FALSY_NUMBER":   primitive.Number,
		"TRUTHY_BOOLEAN": primitive.Boolean,
		"TRUTHY_STRING":  primitive.String,
		"TRUTHY_NUMBER":  primitive.Number,
	}))
	require.NoError(t, err)
	assert.Equal(t, config.Resolved{
		"FALSY_BOOLEAN":  false,
		"FALSY_STRING":   "",
		"FALSY_NUMBER":   0.0,
		"TRUTHY_BOOLEAN": true,
		"TRUTHY_STRING":  "string",
		"TRUTHY_NUMBER":  1.0,
	}, got)

	_, err = inst.GetAll(config.NewSchema(config.Field{Key: "INVALID_NUMBER", Primitive: primitive.Number}))
	assert.ErrorIs(t, err, config.ErrInvalidNumber)

	_, err = inst.GetAll(config.NewSchema(config.Field{Key: "INVALID_TYPE", Primitive: "{}"}))
	assert.ErrorIs(t, err, config.ErrUnsupportedPrimitive)
}

func TestInstance_GetAll_LiteralDollar(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "DB_PASSWORD=abc$def\nGREETING=\"hi ${HOME}\"\nPRICE=$5\nQUOTED='$HOME'\n")
	reg := config.New(config.WithStore(config.NewMapStore(nil)))
	require.NoError(t, reg.Ingest(context.Background(), path))

	inst, err := reg.Instance()
	require.NoError(t, err)

	got, err := inst.GetAll(config.NewSchema(
		config.Field{Key: "DB_PASSWORD", Primitive: primitive.String},
		config.Field{Key: "GREETING", Primitive: primitive.String},
		config.Field{Key: "PRICE", Primitive: primitive.String},
		config.Field{Key: "QUOTED", Primitive: primitive.String},
	))
	require.NoError(t, err)
	assert.Equal(t, config.Resolved{
		"DB_PASSWORD": "abc$def",
		"GREETING":    "hi ${HOME}",
		"PRICE":       "$5",
		"QUOTED":      "$HOME",
	}, got)
}

func TestInstance_Get(t *testing.T) {
	t.Parallel()

	inst := ingestedInstance(t, map[string]string{"PORT": "8080"})

	v, err := inst.Get("PORT", primitive.Number)
	require.NoError(t, err)
	assert.Equal(t, 8080.0, v)

	_, err = inst.Get("HOST", primitive.String)
	assert.ErrorIs(t, err, config.ErrMissingConfiguration)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	type timeout float64

	inst := ingestedInstance(t, map[string]string{"DEBUG": "true", "TIMEOUT": "2.5", "NAME": "api"})

	debug, err := config.Lookup[bool](inst, "DEBUG")
	require.NoError(t, err)
	assert.True(t, debug)

	to, err := config.Lookup[timeout](inst, "TIMEOUT")
	require.NoError(t, err)
	assert.Equal(t, timeout(2.5), to)

	name, err := config.Lookup[string](inst, "NAME")
	require.NoError(t, err)
	assert.Equal(t, "api", name)

	_, err = config.Lookup[float64](inst, "NAME")
	assert.ErrorIs(t, err, config.ErrInvalidNumber)

	_, err = config.Lookup[string](inst, "ABSENT")
	assert.ErrorIs(t, err, config.ErrMissingConfiguration)
}

func TestInstance_ZeroValue(t *testing.T) {
	t.Setenv("ENVKIT_TEST_ZERO_INSTANCE", "42")

	var inst config.Instance
	got, err := inst.GetAll(config.NewSchema(
		config.Field{Key: "ENVKIT_TEST_ZERO_INSTANCE", Primitive: primitive.Number},
	))
	require.NoError(t, err)
	assert.Equal(t, config.Resolved{"ENVKIT_TEST_ZERO_INSTANCE": float64(42)}, got)

	_, err = config.Lookup[string](&inst, "ENVKIT_TEST_ZERO_INSTANCE_MISSING")
	assert.ErrorIs(t, err, config.ErrMissingConfiguration)
}
