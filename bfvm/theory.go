package bfvm

const Theory = `
Machine Model:
A program is text; only the eight symbols + - > < . , [ ] are instructions and
every other character is a comment. Loading keeps the instructions in order and
pairs each [ with its ] in a two-way jump table, so both branch directions are
a single lookup. A ] with no opener is reported before a [ that is never closed.

A run owns a tape of 30000 byte cells, a data pointer starting at cell 0, an
instruction pointer starting at 0, and an output buffer. + and - wrap modulo
256. Stepping the data pointer off either end of the tape is a fault: the run
stops and keeps the output written so far. , reads one byte and leaves the cell
unchanged at end of input.

[ on a zero cell jumps to its ], and ] on a non-zero cell jumps back to its [.
The instruction pointer then advances by one whether or not a jump happened,
which is why jump targets are the brackets themselves.
`
