package ports

// Notifier es el puerto de salida hacia el transporte de correo. El envío es
// best-effort: los callers registran el error y lo tragan, nunca fallan la
// operación de negocio por un problema de entrega.
type Notifier interface {
	SendTemporaryPassword(to, name, temporary string) error
}
