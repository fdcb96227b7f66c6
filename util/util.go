package util

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rabobank/bssb/conf"
	"github.com/rabobank/bssb/model"
)

func WriteHttpResponse(w http.ResponseWriter, code int, object interface{}) {
	data, err := json.Marshal(object)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, err.Error())
		return
	}

	w.WriteHeader(code)
	_, _ = fmt.Fprint(w, string(data))
}

// BasicAuth - validate if user/pass in the http request match the configured service broker user/pass
func BasicAuth(w http.ResponseWriter, r *http.Request, username, password string) bool {
	user, pass, ok := r.BasicAuth()
	if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 || subtle.ConstantTimeCompare([]byte(pass), []byte(password)) != 1 {
		w.Header().Set("WWW-Authenticate", `Basic realm="`+conf.BasicAuthRealm+`"`)
		w.WriteHeader(401)
		_, _ = w.Write([]byte("Unauthorised.\n"))
		return false
	}
	return true
}

func DumpRequest(r *http.Request) {
	if conf.Debug {
		fmt.Printf("dumping %s request for URL: %s\n", r.Method, r.URL)
		fmt.Println("dumping request headers...")
		for name, values := range r.Header {
			if name == "Authorization" {
				fmt.Printf(" %s: %s\n", name, "<redacted>")
			} else {
				for _, value := range values {
					fmt.Printf(" %s: %s\n", name, value)
				}
			}
		}

		fmt.Println("dumping request body...")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			fmt.Printf("Error reading body: %v\n", err)
		} else {
			fmt.Println(string(body))
		}
		// Restore the io.ReadCloser to it's original state
		r.Body = io.NopCloser(bytes.NewBuffer(body))
	}
}

func ProvisionObjectFromRequest(r *http.Request, object interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		fmt.Printf("failed to read json object from request, error: %s\n", err)
		return err
	}
	err = json.Unmarshal(body, object)
	if err != nil {
		fmt.Printf("failed to parse json object from request, error: %s\n", err)
		return err
	}
	return nil
}

func GetPlan(serviceId, planId string) model.ServicePlan {
	var planNotFound model.ServicePlan
	for _, service := range conf.Catalog.Services {
		if service.Id == serviceId {
			for _, plan := range service.Plans {
				if plan.Id == planId {
					return plan
				}
			}
		}
	}
	return planNotFound
}

func GetServiceById(serviceId string) model.Service {
	var service model.Service
	for _, service := range conf.Catalog.Services {
		if service.Id == serviceId {
			return service
		}
	}
	return service
}

func Encrypt(stringToEncrypt string) (string, error) {
	var encryptedString string
	if len(stringToEncrypt) == 0 {
		return "", nil
	}
	key, _ := hex.DecodeString(hex.EncodeToString([]byte(conf.EncryptKey)))

	plaintext := []byte(stringToEncrypt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return encryptedString, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return encryptedString, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return encryptedString, err
	}

	// the nonce is kept as a prefix of the encrypted data
	ciphertext := aesGCM.Seal(nonce, nonce, plaintext, nil)
	encryptedString = fmt.Sprintf("%x", ciphertext)
	return encryptedString, nil
}

func Decrypt(encryptedString string) (string, error) {
	var decryptedString string
	if len(encryptedString) == 0 {
		return "", nil
	}
	key, _ := hex.DecodeString(hex.EncodeToString([]byte(conf.EncryptKey)))
	enc, _ := hex.DecodeString(encryptedString)

	block, err := aes.NewCipher(key)
	if err != nil {
		return decryptedString, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return decryptedString, err
	}

	nonceSize := aesGCM.NonceSize()
	if nonceSize > len(enc) {
		return "", errors.New(fmt.Sprintf("invalid encrypted string, size (%d) is smaller than the nonce size (%d)", nonceSize, len(enc)))
	}
	nonce, ciphertext := enc[:nonceSize], enc[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return decryptedString, err
	}

	decryptedString = fmt.Sprintf("%s", plaintext)
	return decryptedString, nil
}
