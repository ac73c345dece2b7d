package repository

// Persistable contrato uniforme de persistencia de los cuatro almacenes.
//
// Save escribe una línea de cabecera y una línea por entidad, truncando el
// contenido previo del archivo. Load limpia primero la colección en memoria
// (es idempotente, nunca aditivo); un archivo inexistente se trata como
// almacén vacío (primer arranque). Clear vacía solo la memoria, nunca toca
// el archivo. No hay persistencia automática: los llamadores invocan Save
// explícitamente tras mutar.
type Persistable interface {
	Save() error
	Load() error
	Clear()
	// FilePath devuelve la ruta del archivo; el almacén de órdenes devuelve
	// sus tres rutas unidas por comas.
	FilePath() string
}
