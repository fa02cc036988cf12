package apihelpers

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
)

type CertificatePaths struct {
	ServerCertPath string `json:"server_cert_path" yaml:"server_cert_path"`
	ServerKeyPath  string `json:"server_key_path" yaml:"server_key_path"`
	CACertPath     string `json:"ca_cert_path" yaml:"ca_cert_path"`
}

func loadCertAndPool(paths CertificatePaths) (tls.Certificate, *x509.CertPool, error) {
	cert, err := tls.LoadX509KeyPair(paths.ServerCertPath, paths.ServerKeyPath)
	if err != nil {
		return tls.Certificate{}, nil, err
	}

	caCert, err := os.ReadFile(paths.CACertPath)
	if err != nil {
		return tls.Certificate{}, nil, err
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return tls.Certificate{}, nil, errors.New("no certificates found in " + paths.CACertPath)
	}
	return cert, caCertPool, nil
}

// LoadTLSConfig builds the server side config requiring client certificates.
func LoadTLSConfig(paths CertificatePaths) (*tls.Config, error) {
	cert, caCertPool, err := loadCertAndPool(paths)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    caCertPool,
	}, nil
}

// LoadClientTLSConfig builds the config for calling an mTLS protected service.
func LoadClientTLSConfig(paths CertificatePaths) (*tls.Config, error) {
	cert, caCertPool, err := loadCertAndPool(paths)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caCertPool,
	}, nil
}
