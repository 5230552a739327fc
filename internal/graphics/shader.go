package graphics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
)

var (
	ErrShaderSource  = errors.New("shader source unavailable")
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrShaderLink    = errors.New("shader program link failed")
)

// Program is a linked shader program and the uniform slots resolved on it.
type Program struct {
	ID   uint32
	Name string

	slots map[string]int32
}

func NewProgram(id uint32, name string) *Program {
	return &Program{ID: id, Name: name, slots: make(map[string]int32)}
}

// BindSlot records the resolved location of a uniform.
func (p *Program) BindSlot(name string, slot int32) {
	p.slots[name] = slot
}

// Slot returns a previously resolved uniform location.
func (p *Program) Slot(name string) (int32, bool) {
	slot, ok := p.slots[name]
	return slot, ok
}

// ShaderLoader compiles programs from source files under a base directory.
type ShaderLoader struct {
	dir string
}

func NewShaderLoader(dir string) *ShaderLoader {
	return &ShaderLoader{dir: dir}
}

// LoadProgram compiles and links a program from a fragment and a vertex
// shader file, relative to the loader's directory.
func (l *ShaderLoader) LoadProgram(fragmentPath, vertexPath string) (*Program, error) {
	fragmentSource, err := os.ReadFile(filepath.Join(l.dir, fragmentPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderSource, err)
	}
	vertexSource, err := os.ReadFile(filepath.Join(l.dir, vertexPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderSource, err)
	}

	id, err := compileProgram(string(vertexSource), string(fragmentSource))
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}

	name := strings.TrimSuffix(filepath.Base(fragmentPath), filepath.Ext(fragmentPath))
	return NewProgram(id, name), nil
}

// DeleteProgram releases the GL program.
func (l *ShaderLoader) DeleteProgram(p *Program) {
	if p == nil || p.ID == 0 {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("%w: %s", ErrShaderLink, strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
