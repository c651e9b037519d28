package cli

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

type CertgenOptions struct {
	*RootOptions

	CertFile string
	KeyFile  string
	Hosts    []string
	Bits     int
	Validity time.Duration
	Force    bool
}

// NewCertgenCommand creates a self signed CA and a server certificate for
// server.tls_cert and server.tls_key.
func NewCertgenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CertgenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "certgen",
		Short: "Generate a self signed TLS certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runCertgen(opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", opts.CertFile, opts.KeyFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.CertFile, "cert", "certs/server.crt", "certificate output path")
	cmd.Flags().StringVar(&opts.KeyFile, "key", "certs/server.key", "private key output path")
	cmd.Flags().StringSliceVar(&opts.Hosts, "host", []string{"127.0.0.1", "::1", "localhost"}, "ip addresses and dns names of the server")
	cmd.Flags().IntVar(&opts.Bits, "bits", 4096, "rsa key size")
	cmd.Flags().DurationVar(&opts.Validity, "validity", 10*365*24*time.Hour, "certificate lifetime")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite existing files")

	return cmd
}

var errCertExists = errors.New("certificate already exists, use --force to overwrite")

func runCertgen(opts *CertgenOptions) error {
	if !opts.Force && (exists(opts.CertFile) || exists(opts.KeyFile)) {
		return errCertExists
	}
	certPEM, keyPEM, err := generateCert(opts.Hosts, opts.Bits, opts.Validity)
	if err != nil {
		return err
	}
	for path, data := range map[string][]byte{opts.CertFile: certPEM, opts.KeyFile: keyPEM} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return err
		}
	}
	return nil
}

func generateCert(hosts []string, bits int, validity time.Duration) (certPEM []byte, keyPEM []byte, err error) {
	now := time.Now()
	subject := pkix.Name{
		Organization: []string{"volunteerhub"},
	}

	caKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, err
	}
	caSerial, err := serialNumber()
	if err != nil {
		return nil, nil, err
	}
	ca := &x509.Certificate{
		SerialNumber:          caSerial,
		Subject:               subject,
		NotBefore:             now,
		NotAfter:              now.Add(validity),
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}

	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, err
	}
	serial, err := serialNumber()
	if err != nil {
		return nil, nil, err
	}
	cert := &x509.Certificate{
		SerialNumber: serial,
		Subject:      subject,
		NotBefore:    now,
		NotAfter:     now.Add(validity),
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			cert.IPAddresses = append(cert.IPAddresses, ip)
		} else {
			cert.DNSNames = append(cert.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, cert, ca, &key.PublicKey, caKey)
	if err != nil {
		return nil, nil, err
	}
	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	return certPEM, keyPEM, nil
}

func serialNumber() (*big.Int, error) {
	return rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
