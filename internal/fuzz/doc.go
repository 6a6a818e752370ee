// Package fuzztests houses Go fuzz harnesses for the zinc pipeline
// (source -> lexer -> parser -> lower -> codegen). They guard against panics,
// hangs and nondeterministic output on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через driver.Compile.
//
// Не делает: генерацию корпусов, запуск cargo.
package fuzztests
