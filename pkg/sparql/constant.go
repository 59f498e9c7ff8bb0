package sparql

const formField = "update"

// iriForbidden may not appear inside <...>, together with whitespace and control characters.
const iriForbidden = "<>\"{}|^`\\"
